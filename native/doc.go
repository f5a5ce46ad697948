// SPDX-License-Identifier: MIT

// Package native provides the LAPACK-compatible dense solve routines
// xGESV for float64 (Dgesv) and float32 (Sgesv), backed by gonum.
//
// Both follow the reference calling convention: column-major A (n×n, leading
// dimension lda) and B (n×nrhs, leading dimension ldb); on return B holds X,
// A is overwritten by its LU factors and ipiv holds the (0-based) row
// interchanges. The integer status is
//
//	 0  success
//	-i  the i-th argument was invalid (nothing is modified)
//	 i  U(i,i) is exactly zero; the factorization completed but no solution
//	    was computed
package native
