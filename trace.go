// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package straxis

import (
	"github.com/straxis-go/straxis/internal/config"
	"github.com/straxis-go/straxis/internal/kernel"
	"github.com/straxis-go/straxis/internal/stride"
)

// Trace computes C <- beta*C + alpha*partial_trace(op(permute(A))): for
// each pair (cindA1[i], cindA2[i]) of equal-extent axes of A, the matched
// diagonal is summed into the destination cell named by indCinA.
// ndim(A) must equal ndim(C) + 2*len(cindA1); indCinA, cindA1, and
// cindA2 together must cover 0..ndim(A)-1 with no repeats; and
// A.Dims[cindA1[i]] must equal A.Dims[cindA2[i]] for every i.
func Trace[T Number](alpha Coefficient[T], a Operand[T], conjA Conj, beta Coefficient[T], c Operand[T], indCinA, cindA1, cindA2 []int) error {
	if err := validateTraceShapes(a, c, indCinA, cindA1, cindA2); err != nil {
		return err
	}
	if alpha.Tag == TagZero && beta.Tag == TagOne {
		return nil
	}

	strideAInC := gatherInts(a.Strides, indCinA)
	open := stride.OptimizeOpen(c.Dims, c.Strides, strideAInC)

	diagDims := gatherInts(a.Dims, cindA1)
	diagStride := make([]int, len(cindA1))
	for i := range cindA1 {
		diagStride[i] = a.Strides[cindA1[i]] + a.Strides[cindA2[i]]
	}
	diagDims, diagStrides := stride.OptimizeInner(diagDims, diagStride)

	kernel.Trace(kernel.TraceParams[T]{
		Dims:       open.Dims,
		StrideC:    open.Strides[0],
		StrideA:    open.Strides[1],
		MinStride:  open.MinStride,
		DiagDims:   diagDims,
		DiagStride: diagStrides[0],
		AlphaTag:   alpha.Tag,
		Alpha:      alpha.Value,
		BetaTag:    beta.Tag,
		Beta:       beta.Value,
		Threshold:  config.Current().BaseCaseThreshold,
	}, a.view(conjA), c.view(Normal))

	return nil
}

func validateTraceShapes[T Number](a, c Operand[T], indCinA, cindA1, cindA2 []int) error {
	na, nc := a.rank(), c.rank()
	if len(a.Strides) != na || len(c.Strides) != nc {
		return shapeMismatch("trace", "stride tuple length must equal tensor rank")
	}
	k := len(cindA1)
	if len(cindA2) != k {
		return shapeMismatch("trace", "cindA1 and cindA2 must have equal length")
	}
	if na != nc+2*k {
		return shapeMismatch("trace", "ndim(A) must equal ndim(C) + 2*len(cindA1)",
			"ndim(A)=", na, " ndim(C)=", nc, " K=", k)
	}
	if len(indCinA) != nc {
		return shapeMismatch("trace", "indCinA must have length ndim(C)")
	}
	seen := make([]bool, na)
	mark := func(list []int) bool {
		for _, v := range list {
			if v < 0 || v >= na || seen[v] {
				return false
			}
			seen[v] = true
		}
		return true
	}
	if !mark(indCinA) || !mark(cindA1) || !mark(cindA2) {
		return shapeMismatch("trace", "indCinA, cindA1, and cindA2 must partition 0..ndim(A)-1 with no repeats")
	}
	for i := 0; i < k; i++ {
		if a.Dims[cindA1[i]] != a.Dims[cindA2[i]] {
			return shapeMismatch("trace", "contracted axis pair extents must match",
				"pair=", i, " dims=", a.Dims[cindA1[i]], ",", a.Dims[cindA2[i]])
		}
	}
	for i := 0; i < nc; i++ {
		want := a.Dims[indCinA[i]]
		if c.Dims[i] != want {
			return shapeMismatch("trace", "destination shape does not match source open axes",
				"axis=", i, " want=", want, " got=", c.Dims[i])
		}
	}
	return nil
}
