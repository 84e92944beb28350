// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package straxis

import "github.com/straxis-go/straxis/internal/kernel"

// Number is the set of element kinds straxis operates on.
type Number = kernel.Number

// Conj is the two-valued conjugation tag carried per operand. On complex
// element kinds it toggles elementwise conjugation during reads; on real
// element kinds it is always a no-op.
type Conj bool

const (
	Normal     Conj = false
	Conjugated Conj = true
)

// Operand describes one input or output tensor to a kernel call: its
// element buffer, and its shape and per-axis strides in elements.
// Strides may be arbitrary, including negative; zero-stride destinations
// are not supported. Operand owns nothing: it borrows Data for the
// duration of one call.
//
// A rank-0 (scalar) Operand has an empty Dims and Strides and a
// one-element Data; the element lives at Data[0].
type Operand[T Number] struct {
	Dims    []int
	Strides []int
	Data    []T
}

func (o Operand[T]) rank() int { return len(o.Dims) }

func (o Operand[T]) numElements() int {
	n := 1
	for _, d := range o.Dims {
		n *= d
	}
	return n
}

func (o Operand[T]) view(conj Conj) kernel.View[T] {
	return kernel.NewView(o.Data, o.Strides, bool(conj))
}
