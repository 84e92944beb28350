package kernel

// ContractParams bundles one native Contract call's already-optimized
// open-axis shape/strides for all three operands plus the contracted-axis
// shape/strides for A and B. Open axes are the concatenation of A's and
// B's open axes in the order the destination expects; on any given open
// axis exactly one of StrideA/StrideB is the real per-axis stride and the
// other is 0, since that axis does not exist on the other operand.
type ContractParams[T Number] struct {
	Dims          []int
	StrideA       []int
	StrideB       []int
	StrideC       []int
	MinStride     []int
	ContractDims  []int
	ContractStrideA []int
	ContractStrideB []int
	AlphaTag      Tag
	Alpha         T
	BetaTag       Tag
	Beta          T
	Threshold     int
}

// Contract runs the RecursiveKernel's native binary specialization:
// C <- beta*C + alpha*sum_k op(A)*op(B) over every paired contracted
// axis, for each open multi-index.
func Contract[T Number](p ContractParams[T], a, b, c View[T]) {
	if p.AlphaTag == TagZero && p.BetaTag == TagOne {
		return
	}

	combine := newCombiner(p.AlphaTag, p.BetaTag, p.Alpha, p.Beta)
	offsets := make([]int, 3)
	strides := [][]int{p.StrideA, p.StrideB, p.StrideC}

	cStrides := [][]int{p.ContractStrideA, p.ContractStrideB}
	cOffsets := make([]int, 2)

	var leaf func(offsets []int)
	if p.AlphaTag == TagZero {
		leaf = func(offsets []int) {
			c.Data[offsets[2]] = combine(T(0), c.Data[offsets[2]])
		}
	} else {
		leaf = func(offsets []int) {
			var sum T
			cOffsets[0], cOffsets[1] = offsets[0], offsets[1]
			walk(p.ContractDims, cOffsets, cStrides, func(off []int) {
				sum += a.at(off[0]) * b.at(off[1])
			})
			c.Data[offsets[2]] = combine(sum, c.Data[offsets[2]])
		}
	}

	splitRecurse(append([]int(nil), p.Dims...), offsets, strides, p.MinStride, p.Threshold, leaf)
}
