package kernel

// TraceParams bundles one Trace call's already-optimized open-axis shape
// and stride information, the diagonal axes being summed over, and the
// call's coefficients. DiagStride[i] is the single combined per-step
// stride for diagonal pair i (strideA[cindA1[i]] + strideA[cindA2[i]]),
// since advancing the shared diagonal index by one moves both matched
// axes of A simultaneously.
type TraceParams[T Number] struct {
	Dims       []int
	StrideA    []int
	StrideC    []int
	MinStride  []int
	DiagDims   []int
	DiagStride []int
	AlphaTag   Tag
	Alpha      T
	BetaTag    Tag
	Beta       T
	Threshold  int
}

// Trace runs the RecursiveKernel's diagonal-capture specialization:
// C <- beta*C + alpha*partial_trace(op(permute(A))), summing op(A) over
// every matched pair of contracted axes for each open multi-index.
func Trace[T Number](p TraceParams[T], a, c View[T]) {
	if p.AlphaTag == TagZero && p.BetaTag == TagOne {
		return
	}

	combine := newCombiner(p.AlphaTag, p.BetaTag, p.Alpha, p.Beta)
	offsets := make([]int, 2)
	strides := [][]int{p.StrideA, p.StrideC}

	diagStrides := [][]int{p.DiagStride}
	diagOffsets := make([]int, 1)

	var leaf func(offsets []int)
	if p.AlphaTag == TagZero {
		leaf = func(offsets []int) {
			c.Data[offsets[1]] = combine(T(0), c.Data[offsets[1]])
		}
	} else {
		leaf = func(offsets []int) {
			var sum T
			diagOffsets[0] = offsets[0]
			walk(p.DiagDims, diagOffsets, diagStrides, func(off []int) {
				sum += a.at(off[0])
			})
			c.Data[offsets[1]] = combine(sum, c.Data[offsets[1]])
		}
	}

	splitRecurse(append([]int(nil), p.Dims...), offsets, strides, p.MinStride, p.Threshold, leaf)
}
