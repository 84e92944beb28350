package blasplan

import "gonum.org/v1/gonum/blas/cblas64"

func gemmComplex64(transA, transB byte, m, n, k int, alpha complex64, aData []complex64, ldA int, bData []complex64, ldB int, beta complex64, cData []complex64, ldC int) {
	rowsA, colsA := m, k
	if transA == 'T' || transA == 'C' {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n
	if transB == 'T' || transB == 'C' {
		rowsB, colsB = n, k
	}
	a := cblas64.General{Rows: rowsA, Cols: colsA, Stride: ldA, Data: aData}
	b := cblas64.General{Rows: rowsB, Cols: colsB, Stride: ldB, Data: bData}
	c := cblas64.General{Rows: m, Cols: n, Stride: ldC, Data: cData}
	cblas64.Gemm(toTranspose(transA), toTranspose(transB), alpha, a, b, beta, c)
}
