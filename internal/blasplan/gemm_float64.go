package blasplan

import "gonum.org/v1/gonum/blas/blas64"

func gemmFloat64(transA, transB byte, m, n, k int, alpha float64, aData []float64, ldA int, bData []float64, ldB int, beta float64, cData []float64, ldC int) {
	rowsA, colsA := m, k
	if transA == 'T' {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n
	if transB == 'T' {
		rowsB, colsB = n, k
	}
	a := blas64.General{Rows: rowsA, Cols: colsA, Stride: ldA, Data: aData}
	b := blas64.General{Rows: rowsB, Cols: colsB, Stride: ldB, Data: bData}
	c := blas64.General{Rows: m, Cols: n, Stride: ldC, Data: cData}
	blas64.Gemm(toTranspose(transA), toTranspose(transB), alpha, a, b, beta, c)
}
