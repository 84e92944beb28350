package kernel

// baseCaseThreshold is the default tuning threshold (in scalar ops) below
// which splitRecurse stops bisecting and falls through to a flat walkAxis
// traversal. Callers that load internal/config's tuning knobs pass an
// overridden threshold instead of relying on this default.
const baseCaseThreshold = 4096

// splitRecurse implements the cache-blocking divide-and-conquer
// traversal: while the remaining work exceeds threshold, it bisects the
// axis k that maximizes dims[k]*minStride[k] (the axis whose subdivision
// shrinks the touched footprint the most) and recurses on each half;
// once the block is small enough, or every axis has collapsed to extent
// 1, it hands off to a flat walkAxis traversal in the already-optimized
// axis order.
//
// dims and offsets are mutated in place across the two recursive calls
// and restored before returning, so a single pair of backing slices can
// be shared by the whole call.
func splitRecurse(dims []int, offsets []int, strides [][]int, minStride []int, threshold int, leaf func(offsets []int)) {
	if threshold <= 0 {
		threshold = baseCaseThreshold
	}

	total := 1
	maxDim := 1
	for _, d := range dims {
		total *= d
		if d > maxDim {
			maxDim = d
		}
	}
	if total == 0 {
		return
	}
	if total <= threshold || maxDim <= 1 {
		walk(dims, offsets, strides, leaf)
		return
	}

	k, best := 0, -1
	for i, d := range dims {
		if d <= 1 {
			continue
		}
		score := d * minStride[i]
		if score > best {
			best = score
			k = i
		}
	}

	full := dims[k]
	d1 := full / 2
	d2 := full - d1

	dims[k] = d1
	splitRecurse(dims, offsets, strides, minStride, threshold, leaf)

	for j := range offsets {
		offsets[j] += d1 * strides[j][k]
	}
	dims[k] = d2
	splitRecurse(dims, offsets, strides, minStride, threshold, leaf)
	for j := range offsets {
		offsets[j] -= d1 * strides[j][k]
	}

	dims[k] = full
}
