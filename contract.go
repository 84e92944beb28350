// Copyright 2025 Straxis Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package straxis

import (
	"github.com/straxis-go/straxis/internal/blasplan"
	"github.com/straxis-go/straxis/internal/config"
	"github.com/straxis-go/straxis/internal/kernel"
	"github.com/straxis-go/straxis/internal/stride"
)

// Method selects how Contract computes C <- beta*C + alpha*sum A*B.
type Method int

const (
	// MethodAuto dispatches according to internal/config's current
	// DefaultMethod ("auto", "native", or "library"); a Zero alpha never
	// reads A or B, so it always takes the cheap native path regardless
	// of Method or DefaultMethod.
	MethodAuto Method = iota
	// MethodForceNative always uses internal/kernel's generic RecursiveKernel
	// contraction, regardless of dtype or layout.
	MethodForceNative
	// MethodForceLibraryGemm always routes through internal/blasplan's
	// BLAS gemm dispatch (unless alpha is Zero, in which case gemm would
	// do no useful work).
	MethodForceLibraryGemm
)

// Contract computes C <- beta*C + alpha*sum_k op(A)*op(B) over every
// contracted axis pair, for each open multi-index. oindA/cindA partition
// A's axes into open and contracted; oindB/cindB do the same for B.
// indCinoAB[j] names the position, in the concatenation of A's open
// axes then B's open axes, that supplies destination axis j. A's and
// B's contracted axes must pair off with equal extent in the order
// given by cindA/cindB.
func Contract[T Number](alpha Coefficient[T], a Operand[T], conjA Conj, b Operand[T], conjB Conj, beta Coefficient[T], c Operand[T], oindA, cindA, oindB, cindB, indCinoAB []int, method Method) error {
	if err := validateContractShapes(a, b, c, oindA, cindA, oindB, cindB, indCinoAB); err != nil {
		return err
	}
	if alpha.Tag == TagZero && beta.Tag == TagOne {
		return nil
	}

	total := len(oindA) + len(oindB)

	strideAOpen := append(gatherInts(a.Strides, oindA), make([]int, len(oindB))...)
	strideBOpen := append(make([]int, len(oindA)), gatherInts(b.Strides, oindB)...)

	inv := make([]int, total)
	for j, p := range indCinoAB {
		inv[p] = j
	}
	strideCOpen := make([]int, total)
	dimsOpen := make([]int, total)
	for p := 0; p < total; p++ {
		strideCOpen[p] = c.Strides[inv[p]]
		dimsOpen[p] = c.Dims[inv[p]]
	}

	effective := method
	if effective == MethodAuto {
		switch config.Current().DefaultMethod {
		case "native":
			effective = MethodForceNative
		case "library":
			effective = MethodForceLibraryGemm
		default:
			// "auto" (the built-in default) keeps the historical
			// heuristic: prefer the library gemm path whenever it
			// would do useful work.
			effective = MethodForceLibraryGemm
		}
	}

	if alpha.Tag == TagZero || effective == MethodForceNative {
		// On any given open axis exactly one of strideAOpen/strideBOpen
		// is the real per-axis stride and the other is the zero
		// placeholder for the operand that does not own that axis, so
		// their sum is the owning operand's stride; weightOpen feeds
		// that combined value to the split-axis heuristic instead of
		// strideAOpen and strideBOpen directly, which would always
		// contribute a zero minimum.
		weightOpen := make([]int, total)
		for p := 0; p < total; p++ {
			weightOpen[p] = strideAOpen[p] + strideBOpen[p]
		}
		open := stride.OptimizeOpenWeighted(dimsOpen, [][]int{strideCOpen, weightOpen}, strideCOpen, strideAOpen, strideBOpen)

		contractDims := gatherInts(a.Dims, cindA)
		cStrideA := gatherInts(a.Strides, cindA)
		cStrideB := gatherInts(b.Strides, cindB)
		cDims, cStrides := stride.OptimizeInner(contractDims, cStrideA, cStrideB)

		kernel.Contract(kernel.ContractParams[T]{
			Dims:            open.Dims,
			StrideC:         open.Strides[0],
			StrideA:         open.Strides[1],
			StrideB:         open.Strides[2],
			MinStride:       open.MinStride,
			ContractDims:    cDims,
			ContractStrideA: cStrides[0],
			ContractStrideB: cStrides[1],
			AlphaTag:        alpha.Tag,
			Alpha:           alpha.Value,
			BetaTag:         beta.Tag,
			Beta:            beta.Value,
			Threshold:       config.Current().BaseCaseThreshold,
		}, a.view(conjA), b.view(conjB), c.view(Normal))
		return nil
	}

	return blasplan.Contract(blasplan.Params[T]{
		AlphaTag: alpha.Tag, Alpha: alpha.Value,
		BetaTag: beta.Tag, Beta: beta.Value,
		A: blasplan.Operand[T]{Dims: a.Dims, Strides: a.Strides, Data: a.Data, Conj: bool(conjA)},
		B: blasplan.Operand[T]{Dims: b.Dims, Strides: b.Strides, Data: b.Data, Conj: bool(conjB)},
		C: blasplan.Operand[T]{Dims: c.Dims, Strides: c.Strides, Data: c.Data},
		OIndA: oindA, CIndA: cindA, OIndB: oindB, CIndB: cindB, IndCInOAB: indCinoAB,
	})
}

func validateContractShapes[T Number](a, b, c Operand[T], oindA, cindA, oindB, cindB, indCinoAB []int) error {
	na, nb, nc := a.rank(), b.rank(), c.rank()

	if len(a.Strides) != na || len(b.Strides) != nb || len(c.Strides) != nc {
		return shapeMismatch("contract", "stride tuple length must equal tensor rank")
	}
	if !partitionsInto(oindA, cindA, na) {
		return shapeMismatch("contract", "oindA and cindA must partition 0..ndim(A)-1 with no repeats")
	}
	if !partitionsInto(oindB, cindB, nb) {
		return shapeMismatch("contract", "oindB and cindB must partition 0..ndim(B)-1 with no repeats")
	}
	if len(cindA) != len(cindB) {
		return shapeMismatch("contract", "cindA and cindB must have equal length")
	}
	for i := range cindA {
		if a.Dims[cindA[i]] != b.Dims[cindB[i]] {
			return shapeMismatch("contract", "contracted axis pair extents must match",
				"pair=", i, " dims=", a.Dims[cindA[i]], ",", b.Dims[cindB[i]])
		}
	}

	total := len(oindA) + len(oindB)
	if nc != total {
		return shapeMismatch("contract", "ndim(C) must equal len(oindA)+len(oindB)",
			"ndim(C)=", nc, " want=", total)
	}
	if !isPermutation(indCinoAB, total) {
		return shapeMismatch("contract", "indCinoAB is not a permutation of 0..len(oindA)+len(oindB)-1")
	}

	combinedOpen := append(gatherInts(a.Dims, oindA), gatherInts(b.Dims, oindB)...)
	for j := 0; j < nc; j++ {
		want := combinedOpen[indCinoAB[j]]
		if c.Dims[j] != want {
			return shapeMismatch("contract", "destination shape does not match source open axes",
				"axis=", j, " want=", want, " got=", c.Dims[j])
		}
	}
	return nil
}
