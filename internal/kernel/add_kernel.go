package kernel

// AddParams bundles one Add call's already-optimized shape and stride
// information (see internal/stride.OptimizeOpen) plus its coefficients.
type AddParams[T Number] struct {
	Dims      []int
	StrideA   []int
	StrideC   []int
	MinStride []int
	AlphaTag  Tag
	Alpha     T
	BetaTag   Tag
	Beta      T
	Threshold int
}

// Add runs the RecursiveKernel's unary specialization: C <- beta*C +
// alpha*op(permute(A)). a and c must already be views over the
// permuted, optimized axis order p.Dims describes.
func Add[T Number](p AddParams[T], a, c View[T]) {
	if p.AlphaTag == TagZero && p.BetaTag == TagOne {
		return // pure no-op: no read of A, no read or write of C.
	}

	combine := newCombiner(p.AlphaTag, p.BetaTag, p.Alpha, p.Beta)
	offsets := make([]int, 2)
	strides := [][]int{p.StrideA, p.StrideC}

	var leaf func(offsets []int)
	if p.AlphaTag == TagZero {
		leaf = func(offsets []int) {
			c.Data[offsets[1]] = combine(T(0), c.Data[offsets[1]])
		}
	} else {
		leaf = func(offsets []int) {
			term := a.at(offsets[0])
			c.Data[offsets[1]] = combine(term, c.Data[offsets[1]])
		}
	}

	splitRecurse(append([]int(nil), p.Dims...), offsets, strides, p.MinStride, p.Threshold, leaf)
}
