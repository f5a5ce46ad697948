// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/lss/dense"
	"github.com/katalvlaran/lss/native"
	"github.com/katalvlaran/lss/numeric"
)

// routine is the xGESV calling convention.
type routine[T numeric.Float] func(n, nrhs int, a []T, lda int, ipiv []int, b []T, ldb int) int

// LAPACK is column-major dense Storage solved with the xGESV routine
// matching T (Dgesv for float64, Sgesv for float32).
//
// Solve leaves A unchanged: the factorization runs on a transient copy.
// On success the solution replaces x by a buffer swap with b, and b is
// emptied.
type LAPACK[T numeric.Float] struct {
	a, b, x *dense.Matrix[T]

	gesv     routine[T] // nil: chosen by precision
	gesvName string
}

var (
	_ Storage[float64] = (*LAPACK[float64])(nil)
	_ Storage[float32] = (*LAPACK[float32])(nil)
)

// NewLAPACK returns empty storage.
func NewLAPACK[T numeric.Float]() *LAPACK[T] {
	return &LAPACK[T]{
		a: empty[T](),
		b: empty[T](),
		x: empty[T](),
	}
}

func empty[T numeric.Float]() *dense.Matrix[T] {
	m, _ := dense.New[T](0, 0, dense.ColumnMajor, 0)

	return m
}

// A returns the coefficient matrix.
func (s *LAPACK[T]) A() *dense.Matrix[T] { return s.a }

// B returns the right-hand sides (empty after a successful solve).
func (s *LAPACK[T]) B() *dense.Matrix[T] { return s.b }

// X returns the solution block.
func (s *LAPACK[T]) X() *dense.Matrix[T] { return s.x }

// Size implements Storage.
func (s *LAPACK[T]) Size(d int) int {
	switch d {
	case DimRows:
		return s.a.Rows()
	case DimCols:
		return s.a.Cols()
	case DimRHS:
		return s.x.Cols()
	}

	return 0
}

// Resize implements Storage.
func (s *LAPACK[T]) Resize(rows, cols, nrhs int, value T) error {
	if rows < 0 || cols < 0 || nrhs < 0 {
		return linsysErrorf(fmt.Sprintf("Resize(%d,%d,%d)", rows, cols, nrhs), ErrInvalidSize)
	}
	for _, r := range []struct {
		m    *dense.Matrix[T]
		r, c int
	}{{s.a, rows, cols}, {s.b, rows, nrhs}, {s.x, cols, nrhs}} {
		if err := r.m.Resize(r.r, r.c, value); err != nil {
			return err
		}
	}

	return nil
}

// Assign implements Storage. Blocks in row-major layout are copied into
// column-major ones; column-major blocks are adopted without a copy.
func (s *LAPACK[T]) Assign(a, b, x *dense.Matrix[T]) error {
	if a == nil {
		return linsysErrorf("Assign", ErrNilMatrix)
	}
	rows, cols := a.Shape()
	nrhs := 1
	switch {
	case b != nil:
		nrhs = b.Cols()
	case x != nil:
		nrhs = x.Cols()
	}
	if b != nil && b.Rows() != rows {
		return linsysErrorf(fmt.Sprintf("Assign: b is %dx%d, A has %d rows", b.Rows(), b.Cols(), rows), ErrDimensionMismatch)
	}
	if x != nil && (x.Rows() != cols || x.Cols() != nrhs) {
		return linsysErrorf(fmt.Sprintf("Assign: x is %dx%d, want %dx%d", x.Rows(), x.Cols(), cols, nrhs), ErrDimensionMismatch)
	}

	var err error
	if b == nil {
		if b, err = dense.New[T](rows, nrhs, dense.ColumnMajor, 0); err != nil {
			return err
		}
	}
	if x == nil {
		if x, err = dense.New[T](cols, nrhs, dense.ColumnMajor, 0); err != nil {
			return err
		}
	}
	s.a, s.b, s.x = columnMajor(a), columnMajor(b), columnMajor(x)

	return nil
}

func columnMajor[T numeric.Float](m *dense.Matrix[T]) *dense.Matrix[T] {
	if m.Orientation() == dense.ColumnMajor {
		return m
	}
	out, _ := dense.New[T](m.Rows(), m.Cols(), dense.ColumnMajor, 0)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			_ = out.Set(i, j, v)
		}
	}

	return out
}

// routine picks the native solver for T.
func (s *LAPACK[T]) routine() (routine[T], string, error) {
	if s.gesv != nil {
		return s.gesv, s.gesvName, nil
	}
	switch numeric.PrecisionOf[T]() {
	case numeric.Double:
		fn := any(native.Dgesv).(func(int, int, []T, int, []int, []T, int) int)
		return fn, "dgesv", nil
	case numeric.Single:
		fn := any(native.Sgesv).(func(int, int, []T, int, []int, []T, int) int)
		return fn, "sgesv", nil
	}

	return nil, "", ErrUnsupportedPrecision
}

// Solve implements Storage.
// MAIN DESCRIPTION:
//   - Solve A·x = b by LU with partial pivoting.
//
// Implementation:
//   - Stage 1: require A square (ErrNonSquare, no native call).
//   - Stage 2: choose the routine by precision (ErrUnsupportedPrecision).
//   - Stage 3: factor a copy of A; b is overwritten with the solution.
//   - Stage 4: non-zero status becomes *StatusError; zero status swaps
//     b into x and clears b.
func (s *LAPACK[T]) Solve() error {
	n, cols := s.a.Shape()
	if n != cols {
		return linsysErrorf(fmt.Sprintf("Solve: A is %dx%d", n, cols), ErrNonSquare)
	}
	gesv, name, err := s.routine()
	if err != nil {
		return linsysErrorf("Solve", err)
	}

	factor := s.a.Clone()
	ipiv := make([]int, n)
	if st := gesv(n, s.b.Cols(), factor.Data(), factor.LeadingDim(), ipiv, s.b.Data(), s.b.LeadingDim()); st != 0 {
		return &StatusError{Routine: name, Status: st}
	}

	if err = s.x.Swap(s.b); err != nil {
		return err
	}
	s.b.Clear()

	return nil
}
