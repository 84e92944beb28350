package blasplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straxis-go/straxis/internal/kernel"
)

func denseStrides(dims []int) []int {
	n := len(dims)
	out := make([]int, n)
	s := 1
	for i := n - 1; i >= 0; i-- {
		out[i] = s
		s *= dims[i]
	}
	return out
}

func TestContractRowMajorMatMulAliasesBothOperands(t *testing.T) {
	a := Operand[float64]{Dims: []int{2, 3}, Strides: []int{3, 1}, Data: []float64{1, 2, 3, 4, 5, 6}}
	b := Operand[float64]{Dims: []int{3, 2}, Strides: []int{2, 1}, Data: []float64{7, 8, 9, 10, 11, 12}}
	c := Operand[float64]{Dims: []int{2, 2}, Strides: []int{2, 1}, Data: make([]float64, 4)}

	err := Contract(Params[float64]{
		AlphaTag: kernel.TagOne, Alpha: 1,
		BetaTag: kernel.TagZero, Beta: 0,
		A: a, B: b, C: c,
		OIndA: []int{0}, CIndA: []int{1},
		OIndB: []int{1}, CIndB: []int{0},
		IndCInOAB: []int{0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data)
}

func TestContractPermutedDestinationFoldsThroughScratch(t *testing.T) {
	a := Operand[float64]{Dims: []int{2, 3}, Strides: []int{3, 1}, Data: []float64{1, 2, 3, 4, 5, 6}}
	b := Operand[float64]{Dims: []int{3, 2}, Strides: []int{2, 1}, Data: []float64{7, 8, 9, 10, 11, 12}}
	// C stored transposed relative to the natural (M,N) gemm output.
	c := Operand[float64]{Dims: []int{2, 2}, Strides: []int{1, 2}, Data: make([]float64, 4)}

	err := Contract(Params[float64]{
		AlphaTag: kernel.TagOne, Alpha: 1,
		BetaTag: kernel.TagZero, Beta: 0,
		A: a, B: b, C: c,
		OIndA: []int{0}, CIndA: []int{1},
		OIndB: []int{1}, CIndB: []int{0},
		IndCInOAB: []int{0, 1},
	})
	require.NoError(t, err)
	// c.Data is laid out with Strides [1,2]: element (i,j) lives at i+2j.
	want := map[[2]int]float64{{0, 0}: 58, {0, 1}: 64, {1, 0}: 139, {1, 1}: 154}
	for idx, v := range want {
		assert.Equal(t, v, c.Data[idx[0]*1+idx[1]*2])
	}
}

func TestContractNonContiguousOperandPermutesIntoScratch(t *testing.T) {
	// Neither A's open nor contracted axis group has unit stride, so
	// neither the 'N' nor the 'T' alias layout applies: the planner must
	// permute A into a dense scratch buffer before calling gemm.
	data := make([]float64, 13)
	data[0], data[5], data[10] = 1, 2, 3
	data[2], data[7], data[12] = 4, 5, 6
	a := Operand[float64]{Dims: []int{2, 3}, Strides: []int{2, 5}, Data: data}
	b := Operand[float64]{Dims: []int{3, 2}, Strides: []int{2, 1}, Data: []float64{7, 8, 9, 10, 11, 12}}
	c := Operand[float64]{Dims: []int{2, 2}, Strides: []int{2, 1}, Data: make([]float64, 4)}

	err := Contract(Params[float64]{
		AlphaTag: kernel.TagOne, Alpha: 1,
		BetaTag: kernel.TagZero, Beta: 0,
		A: a, B: b, C: c,
		OIndA: []int{0}, CIndA: []int{1},
		OIndB: []int{1}, CIndB: []int{0},
		IndCInOAB: []int{0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data)
}

func TestContractConjugatedOperandAliasesViaConjTrans(t *testing.T) {
	// A's open axis (size 2) is contiguous at stride 1 and its contracted
	// axis (size 3) collapses at stride 2: the 'T'-style layout applies,
	// so conjA resolves it to 'C' (ConjTrans) and aliases A directly
	// instead of permuting into a scratch copy: there is no ConjNoTrans,
	// so this is the only alias layout a conjugated operand can ever
	// take.
	a := Operand[complex128]{
		Dims: []int{2, 3}, Strides: []int{1, 2}, Conj: true,
		Data: []complex128{1 + 1i, 4, 2, 5 + 2i, 3 - 1i, 6},
	}
	b := Operand[complex128]{
		Dims: []int{3, 2}, Strides: []int{2, 1},
		Data: []complex128{1, 0, 0, 1, 1, 0},
	}
	c := Operand[complex128]{Dims: []int{2, 2}, Strides: []int{2, 1}, Data: make([]complex128, 4)}

	err := Contract(Params[complex128]{
		AlphaTag: kernel.TagOne, Alpha: 1,
		BetaTag: kernel.TagZero, Beta: 0,
		A: a, B: b, C: c,
		OIndA: []int{0}, CIndA: []int{1},
		OIndB: []int{1}, CIndB: []int{0},
		IndCInOAB: []int{0, 1},
	})
	require.NoError(t, err)
	want := []complex128{4, 2, 10, 5 - 2i}
	assert.Equal(t, want, c.Data)
}

func TestCollapseAxesDetectsDenseRowMajorGroup(t *testing.T) {
	dims := []int{2, 3, 4}
	strides := denseStrides(dims)

	size, stride, ok := collapseAxes(dims, strides)
	assert.True(t, ok)
	assert.Equal(t, 24, size)
	assert.Equal(t, 1, stride)
}

func TestCollapseAxesRejectsNonNestedStrides(t *testing.T) {
	_, _, ok := collapseAxes([]int{2, 2}, []int{1, 1})
	assert.False(t, ok)
}

func TestCollapseAxesIgnoresSizeOneAxes(t *testing.T) {
	size, stride, ok := collapseAxes([]int{1, 4}, []int{999, 1})
	assert.True(t, ok)
	assert.Equal(t, 4, size)
	assert.Equal(t, 1, stride)
}
