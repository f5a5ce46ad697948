// SPDX-License-Identifier: MIT

package native

import (
	"gonum.org/v1/gonum/blas"
	blasgonum "gonum.org/v1/gonum/blas/gonum"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// Argument positions, 1-based as in the reference signature
// xGESV(N, NRHS, A, LDA, IPIV, B, LDB).
const (
	argN = iota + 1
	argNRHS
	argA
	argLDA
	argIPIV
	argB
	argLDB
)

var (
	lapack64 lapackgonum.Implementation
	blas32   blasgonum.Implementation
)

// checkArgs returns -pos of the first invalid argument or 0.
func checkArgs(n, nrhs, lenA, lda, lenIpiv, lenB, ldb int) int {
	switch {
	case n < 0:
		return -argN
	case nrhs < 0:
		return -argNRHS
	case n > 0 && lenA < lda*(n-1)+n:
		return -argA
	case lda < max(1, n):
		return -argLDA
	case lenIpiv < n:
		return -argIPIV
	case n > 0 && nrhs > 0 && lenB < ldb*(nrhs-1)+n:
		return -argB
	case ldb < max(1, n):
		return -argLDB
	}

	return 0
}

// Dgesv solves A*X = B in double precision.
//
// gonum's routines are row-major, so the column-major A is factored as the
// row-major view of Aᵀ and the system is solved with the transposed factors.
func Dgesv(n, nrhs int, a []float64, lda int, ipiv []int, b []float64, ldb int) int {
	if st := checkArgs(n, nrhs, len(a), lda, len(ipiv), len(b), ldb); st != 0 {
		return st
	}
	if n == 0 {
		return 0
	}

	ipiv = ipiv[:n]
	if ok := lapack64.Dgetrf(n, n, a, lda, ipiv); !ok {
		return firstZeroPivot(n, a, lda)
	}
	if nrhs == 0 {
		return 0
	}

	tmp := toRowMajor(n, nrhs, b, ldb)
	lapack64.Dgetrs(blas.Trans, n, nrhs, a, lda, ipiv, tmp, nrhs)
	fromRowMajor(n, nrhs, tmp, b, ldb)

	return 0
}

// Sgesv solves A*X = B in single precision.
//
// gonum has no float32 LAPACK, so the unblocked right-looking factorization
// (xGETF2) is assembled from the float32 BLAS kernels.
func Sgesv(n, nrhs int, a []float32, lda int, ipiv []int, b []float32, ldb int) int {
	if st := checkArgs(n, nrhs, len(a), lda, len(ipiv), len(b), ldb); st != 0 {
		return st
	}
	if n == 0 {
		return 0
	}

	if st := sgetf2(n, a, lda, ipiv); st != 0 {
		return st
	}
	if nrhs == 0 {
		return 0
	}

	// (row-major view) P·Aᵀ = L·U, hence A = Uᵀ·Lᵀ·P.
	tmp := toRowMajor(n, nrhs, b, ldb)
	blas32.Strsm(blas.Left, blas.Upper, blas.Trans, blas.NonUnit, n, nrhs, 1, a, lda, tmp, nrhs)
	blas32.Strsm(blas.Left, blas.Lower, blas.Trans, blas.Unit, n, nrhs, 1, a, lda, tmp, nrhs)
	for k := n - 1; k >= 0; k-- {
		if p := ipiv[k]; p != k {
			blas32.Sswap(nrhs, tmp[k*nrhs:], 1, tmp[p*nrhs:], 1)
		}
	}
	fromRowMajor(n, nrhs, tmp, b, ldb)

	return 0
}

// sgetf2 factors the row-major n×n matrix a with partial pivoting and
// returns the 1-based index of the first exactly-zero pivot, or 0.
func sgetf2(n int, a []float32, lda int, ipiv []int) int {
	info := 0
	for j := 0; j < n; j++ {
		p := j + blas32.Isamax(n-j, a[j*lda+j:], lda)
		ipiv[j] = p
		if piv := a[p*lda+j]; piv != 0 {
			if p != j {
				blas32.Sswap(n, a[j*lda:], 1, a[p*lda:], 1)
			}
			if j < n-1 {
				blas32.Sscal(n-j-1, 1/a[j*lda+j], a[(j+1)*lda+j:], lda)
			}
		} else if info == 0 {
			info = j + 1
		}
		if j < n-1 {
			blas32.Sger(n-j-1, n-j-1, -1, a[(j+1)*lda+j:], lda, a[j*lda+j+1:], 1, a[(j+1)*lda+j+1:], lda)
		}
	}

	return info
}

// firstZeroPivot scans the diagonal of the factored matrix.
func firstZeroPivot[T float32 | float64](n int, a []T, lda int) int {
	for i := 0; i < n; i++ {
		if a[i*lda+i] == 0 {
			return i + 1
		}
	}

	return 0
}

// toRowMajor copies the column-major n×nrhs block b into a dense row-major buffer.
func toRowMajor[T float32 | float64](n, nrhs int, b []T, ldb int) []T {
	out := make([]T, n*nrhs)
	for i := 0; i < n; i++ {
		for k := 0; k < nrhs; k++ {
			out[i*nrhs+k] = b[k*ldb+i]
		}
	}

	return out
}

func fromRowMajor[T float32 | float64](n, nrhs int, src, b []T, ldb int) {
	for i := 0; i < n; i++ {
		for k := 0; k < nrhs; k++ {
			b[k*ldb+i] = src[i*nrhs+k]
		}
	}
}
