// Package stride implements the StrideOptimizer: pure functions from a
// dims tuple and the stride tuples that co-index it to a reordered axis
// permutation chosen to maximize destination write locality and to give
// the RecursiveKernel's cache-blocking split the best axis to bisect.
//
// Nothing here touches tensor data; every function takes and returns
// plain []int tuples and is safe to call from any element-kind instance
// of the generic kernel engine.
package stride

import "sort"

// Open is the result of optimizing one open-axis traversal: the
// reordered dims and co-indexed stride tuples, plus minStride[k] =
// min(|strides[k]| across all tuples) used by the RecursiveKernel's
// split-axis decision (the axis maximizing dims[k]*minStride[k] is
// preferred for bisection, since subdividing it shrinks the touched
// footprint the most).
type Open struct {
	Dims      []int
	Strides   [][]int
	MinStride []int
}

// OptimizeOpen reorders dims (and every stride tuple in strides, which
// must all have the same length as dims) so that the axis with the
// smallest primary-tuple stride (strides[0], conventionally the
// destination) becomes innermost, ties broken by the remaining tuples
// in order. For add, the primary tuple is the destination stride and
// the one secondary tuple is the source stride; trace and contract
// supply additional tie-breaking tuples in the same order.
func OptimizeOpen(dims []int, strides ...[]int) Open {
	return OptimizeOpenWeighted(dims, strides, strides...)
}

// OptimizeOpenWeighted reorders dims and every tuple in strides exactly
// like OptimizeOpen, but computes MinStride from weights (reordered by
// the same permutation) instead of from strides itself. This matters
// for contract's open axes: on any given open axis exactly one of A's
// or B's stride is a zero placeholder (that operand does not own the
// axis), so taking the min across both operand tuples directly always
// picks the placeholder zero and defeats the dims[k]*minStride[k]
// split-axis heuristic. Callers in that situation pass a single combined
// weight tuple (the sum of the two operand tuples, since exactly one
// side is nonzero per axis) so MinStride reflects the axis's real
// touched footprint.
func OptimizeOpenWeighted(dims []int, weights [][]int, strides ...[]int) Open {
	n := len(dims)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		for _, s := range strides {
			sa, sb := absInt(s[a]), absInt(s[b])
			if sa != sb {
				return sa > sb // larger stride sorts first (outermost); smallest ends up last (innermost).
			}
		}
		return false
	})

	outDims := permute(dims, order)
	outStrides := make([][]int, len(strides))
	for i, s := range strides {
		outStrides[i] = permute(s, order)
	}
	outWeights := make([][]int, len(weights))
	for i, w := range weights {
		outWeights[i] = permute(w, order)
	}

	minStride := make([]int, n)
	for k := 0; k < n; k++ {
		m := absInt(outWeights[0][k])
		for _, w := range outWeights[1:] {
			if v := absInt(w[k]); v < m {
				m = v
			}
		}
		minStride[k] = m
	}

	return Open{Dims: outDims, Strides: outStrides, MinStride: minStride}
}

// OptimizeInner reorders an inner accumulation axis list (trace's
// diagonal pairs, or contract's contracted axes) by the same
// smallest-stride-innermost policy, without computing minStride: these
// axes are walked flat by the kernel's inner accumulation loop and are
// never cache-blocked by splitRecurse.
func OptimizeInner(dims []int, strides ...[]int) (outDims []int, outStrides [][]int) {
	o := OptimizeOpen(dims, strides...)
	return o.Dims, o.Strides
}

func permute(s []int, order []int) []int {
	out := make([]int, len(s))
	for i, idx := range order {
		out[i] = s[idx]
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
