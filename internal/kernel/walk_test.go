package kernel

import "testing"

func TestWalkVisitsEveryMultiIndexOnce(t *testing.T) {
	dims := []int{2, 3}
	strides := [][]int{{3, 1}} // row-major for a 2x3 matrix
	var seen []int

	walk(dims, []int{0}, strides, func(offsets []int) {
		seen = append(seen, offsets[0])
	})

	if len(seen) != 6 {
		t.Fatalf("got %d visits, want 6", len(seen))
	}
	want := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true, 5: true}
	for _, off := range seen {
		if !want[off] {
			t.Fatalf("unexpected offset %d", off)
		}
		delete(want, off)
	}
	if len(want) != 0 {
		t.Fatalf("missing offsets %v", want)
	}
}

func TestWalkRestoresOffsetsAfterEachAxis(t *testing.T) {
	dims := []int{4}
	strides := [][]int{{2}}
	offsets := []int{10}

	walk(dims, offsets, strides, func(offsets []int) {})

	if offsets[0] != 10 {
		t.Fatalf("offsets mutated across call: got %d, want 10", offsets[0])
	}
}

func TestWalkRankZeroInvokesLeafOnce(t *testing.T) {
	n := 0
	walk(nil, nil, nil, func(offsets []int) { n++ })
	if n != 1 {
		t.Fatalf("rank-0 walk invoked leaf %d times, want 1", n)
	}
}
