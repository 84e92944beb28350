// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package straxis

import (
	"github.com/straxis-go/straxis/internal/config"
	"github.com/straxis-go/straxis/internal/kernel"
	"github.com/straxis-go/straxis/internal/stride"
)

// Add computes C <- beta*C + alpha*op(permute(A, indCinA)), where
// indCinA[i] names the axis of A that supplies destination axis i. len(A.Dims)
// must equal len(indCinA), indCinA must be a permutation of 0..ndim(A)-1,
// and C's shape must equal A's shape permuted through indCinA.
//
// When alpha is the Zero coefficient and beta is One this is defined as
// a pure no-op: A is never read and C is never touched.
func Add[T Number](alpha Coefficient[T], a Operand[T], conjA Conj, beta Coefficient[T], c Operand[T], indCinA []int) error {
	if err := validateAddShapes(a, c, indCinA); err != nil {
		return err
	}
	if alpha.Tag == TagZero && beta.Tag == TagOne {
		return nil
	}

	strideAInC := gatherInts(a.Strides, indCinA)
	opt := stride.OptimizeOpen(c.Dims, c.Strides, strideAInC)

	kernel.Add(kernel.AddParams[T]{
		Dims:      opt.Dims,
		StrideC:   opt.Strides[0],
		StrideA:   opt.Strides[1],
		MinStride: opt.MinStride,
		AlphaTag:  alpha.Tag,
		Alpha:     alpha.Value,
		BetaTag:   beta.Tag,
		Beta:      beta.Value,
		Threshold: config.Current().BaseCaseThreshold,
	}, a.view(conjA), c.view(Normal))

	return nil
}

func validateAddShapes[T Number](a, c Operand[T], indCinA []int) error {
	na, nc := a.rank(), c.rank()
	if nc != na {
		return shapeMismatch("add", "ndim(C) must equal ndim(A)", "ndim(A)=", na, " ndim(C)=", nc)
	}
	if !isPermutation(indCinA, na) {
		return shapeMismatch("add", "indCinA is not a permutation of 0..ndim(A)-1", "indCinA=", indCinA)
	}
	if len(a.Strides) != na || len(c.Strides) != nc {
		return shapeMismatch("add", "stride tuple length must equal tensor rank")
	}
	for i := 0; i < nc; i++ {
		want := a.Dims[indCinA[i]]
		if c.Dims[i] != want {
			return shapeMismatch("add", "destination shape does not match permuted source shape",
				"axis=", i, " want=", want, " got=", c.Dims[i])
		}
	}
	return nil
}
