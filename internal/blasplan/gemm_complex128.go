package blasplan

import "gonum.org/v1/gonum/blas/cblas128"

func gemmComplex128(transA, transB byte, m, n, k int, alpha complex128, aData []complex128, ldA int, bData []complex128, ldB int, beta complex128, cData []complex128, ldC int) {
	rowsA, colsA := m, k
	if transA == 'T' || transA == 'C' {
		rowsA, colsA = k, m
	}
	rowsB, colsB := k, n
	if transB == 'T' || transB == 'C' {
		rowsB, colsB = n, k
	}
	a := cblas128.General{Rows: rowsA, Cols: colsA, Stride: ldA, Data: aData}
	b := cblas128.General{Rows: rowsB, Cols: colsB, Stride: ldB, Data: bData}
	c := cblas128.General{Rows: m, Cols: n, Stride: ldC, Data: cData}
	cblas128.Gemm(toTranspose(transA), toTranspose(transB), alpha, a, b, beta, c)
}
