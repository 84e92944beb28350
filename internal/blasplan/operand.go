// Package blasplan implements the ContractionPlanner: for each operand
// of a contraction it decides whether the existing memory can alias
// directly into a BLAS gemm call or must first be permuted into a dense
// scratch buffer, then dispatches to the dtype-specific gemm wrapper and
// folds the result back into the destination.
package blasplan

import "github.com/straxis-go/straxis/internal/kernel"

// Operand is the minimal shape+buffer contract blasplan needs from one
// tensor argument, independent of the root package's Operand so this
// package never imports it (the root package is the one that imports
// blasplan, not the other way around).
type Operand[T kernel.Number] struct {
	Dims    []int
	Strides []int
	Data    []T
	Conj    bool
}

// Params bundles one Contract call's operands, axis partitions, and
// coefficients.
type Params[T kernel.Number] struct {
	AlphaTag kernel.Tag
	Alpha    T
	BetaTag  kernel.Tag
	Beta     T
	A, B, C  Operand[T]

	OIndA, CIndA []int
	OIndB, CIndB []int
	IndCInOAB    []int
}

func gatherInts(s []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = s[v]
	}
	return out
}

func productInts(s []int) int {
	n := 1
	for _, v := range s {
		n *= v
	}
	return n
}

func denseRowMajorStrides(dims []int) []int {
	n := len(dims)
	out := make([]int, n)
	stride := 1
	for i := n - 1; i >= 0; i-- {
		out[i] = stride
		stride *= dims[i]
	}
	return out
}

func isComplexType[T kernel.Number]() bool {
	var zero T
	switch any(zero).(type) {
	case complex64, complex128:
		return true
	default:
		return false
	}
}
