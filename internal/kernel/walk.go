package kernel

// walkAxis performs a depth-first traversal over dims, invoking leaf once
// per multi-index with the accumulated flat offset into each co-indexed
// operand. offsets is mutated in place and restored to its entry value
// before walkAxis returns, so callers may reuse the same backing slice
// across sibling calls without reallocating it. strides[j][k] is the
// per-axis stride of operand j along axis k.
//
// This single traversal serves both the open-axis walk that drives a
// kernel's writes (one or more operands) and the inner contracted- or
// diagonal-axis walk that accumulates a sum (leaf closes over an
// accumulator instead of writing).
func walkAxis(axis int, dims []int, offsets []int, strides [][]int, leaf func(offsets []int)) {
	if axis == len(dims) {
		leaf(offsets)
		return
	}
	n := dims[axis]
	for i := 0; i < n; i++ {
		walkAxis(axis+1, dims, offsets, strides, leaf)
		for j := range offsets {
			offsets[j] += strides[j][axis]
		}
	}
	step := n
	for j := range offsets {
		offsets[j] -= step * strides[j][axis]
	}
}

// walk is the entry point for walkAxis starting at axis 0. dims of
// length 0 walks exactly once (the rank-0 / scalar case).
func walk(dims []int, offsets []int, strides [][]int, leaf func(offsets []int)) {
	walkAxis(0, dims, offsets, strides, leaf)
}
