package blasplan

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

func gemmFloat32(transA, transB byte, m, n, k int, alpha float32, aData []float32, ldA int, bData []float32, ldB int, beta float32, cData []float32, ldC int) {
	rowsA, colsA := m, k
	if transA == 'T' {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n
	if transB == 'T' {
		rowsB, colsB = n, k
	}
	a := blas32.General{Rows: rowsA, Cols: colsA, Stride: ldA, Data: aData}
	b := blas32.General{Rows: rowsB, Cols: colsB, Stride: ldB, Data: bData}
	c := blas32.General{Rows: m, Cols: n, Stride: ldC, Data: cData}
	blas32.Gemm(toTranspose(transA), toTranspose(transB), alpha, a, b, beta, c)
}

func toTranspose(t byte) blas.Transpose {
	switch t {
	case 'T':
		return blas.Trans
	case 'C':
		return blas.ConjTrans
	default:
		return blas.NoTrans
	}
}
