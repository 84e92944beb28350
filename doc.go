// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package straxis provides high-performance primitives for dense
// multidimensional-array (tensor) computation over strided memory
// layouts: generalized permuted addition, partial trace, and pairwise
// contraction. Together these three kernels cover what is needed to
// implement arbitrary Einstein-summation-style expressions on
// floating-point tensors.
//
// # Overview
//
// straxis does not own a tensor container type. Callers, typically an
// expression-evaluating layer sitting above straxis, describe each
// operand with an Operand[T]: an element buffer plus its shape and
// per-axis strides in elements. straxis borrows that description for the
// duration of one call and never retains it afterward.
//
// # Basic usage
//
//	import "github.com/straxis-go/straxis"
//
//	a := straxis.Operand[float32]{Dims: []int{2, 2}, Strides: []int{2, 1}, Data: []float32{1, 2, 3, 4}}
//	c := straxis.Operand[float32]{Dims: []int{2, 2}, Strides: []int{2, 1}, Data: make([]float32, 4)}
//
//	// C <- transpose(A)
//	err := straxis.Add(straxis.One[float32](), a, straxis.Normal, straxis.Zero[float32](), c, []int{1, 0})
//
// # Supported element kinds
//
// Add, Trace, and Contract are generic over straxis.Number: float32,
// float64, complex64, and complex128, the real and complex floating
// kinds the underlying BLAS gemm binding supports. There is no sparse,
// autodiff, distributed, or GPU execution, and no lazy evaluation or
// fusion across kernel calls.
//
// # Coefficients and conjugation
//
// alpha and beta are Coefficient[T] values built with Zero[T](), One[T](),
// or Val(v): the tag, not a runtime comparison against 0 or 1, decides
// which specialized inner loop runs, so callers get the zero-multiply and
// unit-add eliminations simply by stating their intent. conjA/conjB are
// straxis.Normal or straxis.Conjugated; on the two real element kinds
// conjugation is always a no-op.
//
// # Errors
//
// All three entry points validate their IndexMap and shape arguments
// before any write and return a *ShapeMismatch on failure; no partial
// writes occur. Allocation failure is not wrapped: it surfaces as Go's
// own out-of-memory behavior.
package straxis
