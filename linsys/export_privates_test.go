// SPDX-License-Identifier: MIT

package linsys

import "github.com/katalvlaran/lss/numeric"

// SetRoutine replaces the precision-selected native routine of s.
func SetRoutine[T numeric.Float](s *LAPACK[T], name string, fn func(n, nrhs int, a []T, lda int, ipiv []int, b []T, ldb int) int) {
	s.gesv, s.gesvName = fn, name
}
