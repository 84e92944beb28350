package blasplan

import (
	"github.com/straxis-go/straxis/internal/config"
	"github.com/straxis-go/straxis/internal/kernel"
	"github.com/straxis-go/straxis/internal/stride"
)

// Contract runs the library-gemm path: it lays A and B out as
// BLAS-compatible matrices (aliasing existing memory where the layout
// already permits it, permuting into a dense scratch buffer otherwise),
// calls the dtype-specific gemm wrapper, and folds the result into C
// directly or through a scratch buffer, depending on whether C's own
// layout aliases the gemm output shape.
//
// Callers are responsible for shape validation and for routing a Zero
// alpha coefficient to the native path instead: gemm has no Zero-alpha
// shortcut, and a Zero alpha never reads A or B.
func Contract[T kernel.Number](p Params[T]) error {
	openDimsA, contractDimsA := gatherInts(p.A.Dims, p.OIndA), gatherInts(p.A.Dims, p.CIndA)
	openStridesA, contractStridesA := gatherInts(p.A.Strides, p.OIndA), gatherInts(p.A.Strides, p.CIndA)
	openDimsB, contractDimsB := gatherInts(p.B.Dims, p.OIndB), gatherInts(p.B.Dims, p.CIndB)
	openStridesB, contractStridesB := gatherInts(p.B.Strides, p.OIndB), gatherInts(p.B.Strides, p.CIndB)

	m, n, k := productInts(openDimsA), productInts(openDimsB), productInts(contractDimsA)

	conjA := p.A.Conj && isComplexType[T]()
	conjB := p.B.Conj && isComplexType[T]()

	// gemm rejects a leading dimension below the stored matrix's column
	// count even for a single-row matrix, whose pitch is never used: such
	// a pitch is raised, and a too-small multi-row pitch is not aliased.
	fitLD := func(trans byte, ld, rows, cols int, ok bool) (int, bool) {
		if trans != 'N' {
			rows, cols = cols, rows
		}
		if need := max(1, cols); ok && ld < need {
			return need, rows <= 1
		}
		return ld, ok
	}

	aData := p.A.Data
	transA, ldA, okA := layoutA(openDimsA, openStridesA, contractDimsA, contractStridesA, conjA)
	ldA, okA = fitLD(transA, ldA, m, k, okA)
	if !okA {
		aData = permuteToDense[T](p.A.Data, p.A.Strides, append(append([]int(nil), p.OIndA...), p.CIndA...), append(append([]int(nil), openDimsA...), contractDimsA...), conjA)
		transA, ldA = 'N', k
	}

	bData := p.B.Data
	transB, ldB, okB := layoutB(openDimsB, openStridesB, contractDimsB, contractStridesB, conjB)
	ldB, okB = fitLD(transB, ldB, k, n, okB)
	if !okB {
		bData = permuteToDense[T](p.B.Data, p.B.Strides, append(append([]int(nil), p.CIndB...), p.OIndB...), append(append([]int(nil), contractDimsB...), openDimsB...), conjB)
		transB, ldB = 'N', n
	}

	total := len(p.OIndA) + len(p.OIndB)
	inv := make([]int, total)
	for j, pos := range p.IndCInOAB {
		inv[pos] = j
	}
	cStrideOpenA := make([]int, len(p.OIndA))
	for i := range cStrideOpenA {
		cStrideOpenA[i] = p.C.Strides[inv[i]]
	}
	cStrideOpenB := make([]int, len(p.OIndB))
	for i := range cStrideOpenB {
		cStrideOpenB[i] = p.C.Strides[inv[len(p.OIndA)+i]]
	}

	_, ldOpenA, okCA := collapseAxes(openDimsA, cStrideOpenA)
	_, strideOpenB, okCB := collapseAxes(openDimsB, cStrideOpenB)
	ldOpenA, okCA = fitLD('N', ldOpenA, m, n, okCA)

	if okCA && okCB && strideOpenB == 1 {
		gemm(transA, transB, m, n, k, p.Alpha, aData, ldA, bData, ldB, p.Beta, p.C.Data, ldOpenA)
		return nil
	}

	scratch := make([]T, m*n)
	gemm(transA, transB, m, n, k, T(1), aData, ldA, bData, ldB, T(0), scratch, n)

	scratchDims := append(append([]int(nil), openDimsA...), openDimsB...)
	scratchStrides := denseRowMajorStrides(scratchDims)
	foldInto(p.AlphaTag, p.Alpha, scratch, scratchDims, scratchStrides, p.BetaTag, p.Beta, p.C.Data, p.C.Dims, p.C.Strides, p.IndCInOAB)
	return nil
}

// layoutA decides a gemm-compatible layout for the left operand without
// copying: 'N' when the contracted axes already collapse to a
// contiguous run (the open axes become the row pitch), 'T' when the
// open axes collapse to a contiguous run instead (the contracted axes
// become the row pitch). When conj is set the operand can only alias
// through 'C' (ConjTrans): gemm has no ConjNoTrans, so the 'N'-style
// layout is never eligible for a conjugated operand and permuteToDense
// (which applies the conjugate during the copy) is the only fallback.
func layoutA(openDims, openStrides, contractDims, contractStrides []int, conj bool) (trans byte, ld int, ok bool) {
	_, ocStride, ocOK := collapseAxes(openDims, openStrides)
	_, ccStride, ccOK := collapseAxes(contractDims, contractStrides)
	if conj {
		if ocOK && ocStride == 1 && ccOK {
			return 'C', ccStride, true
		}
		return 0, 0, false
	}
	if ccOK && ccStride == 1 && ocOK {
		return 'N', ocStride, true
	}
	if ocOK && ocStride == 1 && ccOK {
		return 'T', ccStride, true
	}
	return 0, 0, false
}

// layoutB mirrors layoutA but with the roles of the open and contracted
// axis groups swapped, since gemm's right operand is logically (K,N)
// rather than (M,K): 'N' needs the open axes contiguous, 'T' needs the
// contracted axes contiguous. As with layoutA, a conjugated operand can
// only alias through the 'T'-style layout, returned as 'C' instead.
func layoutB(openDims, openStrides, contractDims, contractStrides []int, conj bool) (trans byte, ld int, ok bool) {
	_, ocStride, ocOK := collapseAxes(openDims, openStrides)
	_, ccStride, ccOK := collapseAxes(contractDims, contractStrides)
	if conj {
		if ccOK && ccStride == 1 && ocOK {
			return 'C', ocStride, true
		}
		return 0, 0, false
	}
	if ocOK && ocStride == 1 && ccOK {
		return 'N', ccStride, true
	}
	if ccOK && ccStride == 1 && ocOK {
		return 'T', ocStride, true
	}
	return 0, 0, false
}

// permuteToDense copies data into a freshly allocated dense row-major
// buffer ordered by axesOrder, applying conjugation during the copy via
// the same RecursiveKernel unary specialization the root Add entry
// point uses. This is the alias-vs-permute fallback for an operand
// whose memory layout cannot be aliased directly into gemm.
func permuteToDense[T kernel.Number](data []T, stridesFull []int, axesOrder, dimsOut []int, conj bool) []T {
	n := productInts(dimsOut)
	out := make([]T, n)

	srcStride := gatherInts(stridesFull, axesOrder)
	dstStride := denseRowMajorStrides(dimsOut)
	opt := stride.OptimizeOpen(dimsOut, dstStride, srcStride)

	kernel.Add(kernel.AddParams[T]{
		Dims:      opt.Dims,
		StrideC:   opt.Strides[0],
		StrideA:   opt.Strides[1],
		MinStride: opt.MinStride,
		AlphaTag:  kernel.TagOne,
		Alpha:     T(1),
		BetaTag:   kernel.TagZero,
		Threshold: config.Current().BaseCaseThreshold,
	}, kernel.NewView(data, srcStride, conj), kernel.NewView(out, dstStride, false))

	return out
}

// foldInto combines a dense [openA...,openB...]-ordered scratch buffer
// into C, applying alpha/beta through the same ScalarDispatcher combine
// logic the native kernels use, permuted by indCinoAB exactly as the
// root Add entry point permutes its source operand.
func foldInto[T kernel.Number](alphaTag kernel.Tag, alpha T, scratch []T, scratchDims, scratchStrides []int, betaTag kernel.Tag, beta T, cData []T, cDims, cStrides, indCinoAB []int) {
	strideScratchInC := gatherInts(scratchStrides, indCinoAB)
	opt := stride.OptimizeOpen(cDims, cStrides, strideScratchInC)

	kernel.Add(kernel.AddParams[T]{
		Dims:      opt.Dims,
		StrideC:   opt.Strides[0],
		StrideA:   opt.Strides[1],
		MinStride: opt.MinStride,
		AlphaTag:  alphaTag,
		Alpha:     alpha,
		BetaTag:   betaTag,
		Beta:      beta,
		Threshold: config.Current().BaseCaseThreshold,
	}, kernel.NewView(scratch, strideScratchInC, false), kernel.NewView(cData, cStrides, false))
}
