package kernel

import "testing"

func TestSplitRecurseVisitsSameCellsAsFlatWalk(t *testing.T) {
	dims := []int{6, 7}
	strides := [][]int{{7, 1}}
	minStride := []int{7, 1}

	var viaSplit, viaWalk []int
	splitRecurse(append([]int(nil), dims...), []int{0}, strides, minStride, 4, func(offsets []int) {
		viaSplit = append(viaSplit, offsets[0])
	})
	walk(dims, []int{0}, strides, func(offsets []int) {
		viaWalk = append(viaWalk, offsets[0])
	})

	seen := make(map[int]bool)
	for _, o := range viaSplit {
		seen[o] = true
	}
	if len(seen) != len(viaWalk) {
		t.Fatalf("splitRecurse visited %d distinct cells, walk visited %d", len(seen), len(viaWalk))
	}
	for _, o := range viaWalk {
		if !seen[o] {
			t.Fatalf("splitRecurse missed offset %d", o)
		}
	}
}

func TestSplitRecurseRestoresOffsetsAndDims(t *testing.T) {
	dims := []int{8, 8}
	strides := [][]int{{8, 1}}
	minStride := []int{8, 1}
	offsets := []int{0}

	splitRecurse(dims, offsets, strides, minStride, 4, func(offsets []int) {})

	if offsets[0] != 0 {
		t.Fatalf("offsets not restored: got %d, want 0", offsets[0])
	}
	if dims[0] != 8 || dims[1] != 8 {
		t.Fatalf("dims not restored: got %v, want [8 8]", dims)
	}
}

func TestSplitRecurseEmptyAxisNeverInvokesLeaf(t *testing.T) {
	dims := []int{0, 5}
	strides := [][]int{{5, 1}}
	minStride := []int{5, 1}

	n := 0
	splitRecurse(dims, []int{0}, strides, minStride, 4096, func(offsets []int) { n++ })
	if n != 0 {
		t.Fatalf("leaf invoked %d times on an extent-0 axis, want 0", n)
	}
}

func TestSplitRecurseZeroThresholdFallsBackToDefault(t *testing.T) {
	dims := []int{3, 3}
	strides := [][]int{{3, 1}}
	minStride := []int{3, 1}

	n := 0
	splitRecurse(dims, []int{0}, strides, minStride, 0, func(offsets []int) { n++ })
	if n != 9 {
		t.Fatalf("got %d leaves, want 9", n)
	}
}
