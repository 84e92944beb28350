package blasplan

import "sort"

// collapseAxes reports whether the given axis group (dims/strides, of
// equal length) can be represented as a single dense dimension: sorted
// innermost-stride-first, each axis's stride must equal the previous
// axis's stride times its dim (the standard row-major nesting
// condition, generalized to an arbitrary axis order since the group's
// iteration order is ours to choose). Size-1 axes are ignored since any
// stride is compatible with them. Returns the combined size and the
// innermost (fastest-varying) stride.
func collapseAxes(dims, strides []int) (size, stride int, ok bool) {
	var fd, fs []int
	for i, d := range dims {
		if d == 1 {
			continue
		}
		fd = append(fd, d)
		fs = append(fs, strides[i])
	}
	if len(fd) == 0 {
		return 1, 1, true
	}

	idx := make([]int, len(fd))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return absInt(fs[idx[i]]) < absInt(fs[idx[j]]) })

	innerStride := fs[idx[0]]
	if innerStride <= 0 {
		return 0, 0, false
	}

	prevStride, prevDim := innerStride, fd[idx[0]]
	size = prevDim
	for _, k := range idx[1:] {
		if fs[k] != prevStride*prevDim {
			return 0, 0, false
		}
		prevStride, prevDim = fs[k], fd[k]
		size *= prevDim
	}
	return size, innerStride, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
