package blasplan

import "github.com/straxis-go/straxis/internal/kernel"

// gemm dispatches C(m,n) <- beta*C + alpha*op(A)(m,k)*op(B)(k,n) to the
// dtype-specific gonum BLAS wrapper for T, chosen once per call by a
// type switch rather than per element.
func gemm[T kernel.Number](transA, transB byte, m, n, k int, alpha T, aData []T, ldA int, bData []T, ldB int, beta T, cData []T, ldC int) {
	switch a := any(alpha).(type) {
	case float32:
		gemmFloat32(transA, transB, m, n, k, a, any(aData).([]float32), ldA, any(bData).([]float32), ldB, any(beta).(float32), any(cData).([]float32), ldC)
	case float64:
		gemmFloat64(transA, transB, m, n, k, a, any(aData).([]float64), ldA, any(bData).([]float64), ldB, any(beta).(float64), any(cData).([]float64), ldC)
	case complex64:
		gemmComplex64(transA, transB, m, n, k, a, any(aData).([]complex64), ldA, any(bData).([]complex64), ldB, any(beta).(complex64), any(cData).([]complex64), ldC)
	case complex128:
		gemmComplex128(transA, transB, m, n, k, a, any(aData).([]complex128), ldA, any(bData).([]complex128), ldB, any(beta).(complex128), any(cData).([]complex128), ldC)
	}
}
