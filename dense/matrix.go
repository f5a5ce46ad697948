// SPDX-License-Identifier: MIT

// Package dense - generic dense storage with a selectable memory layout.
//
// Purpose:
//   - Hold the coefficient, right-hand side and solution blocks of a linear
//     system in one contiguous buffer.
//   - Support both layouts: row-major (offset = i*cols + j) and column-major
//     (offset = j*rows + i), the latter being what LAPACK-style routines expect.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - New/Resize: O(r*c); At/Set: O(1); Swap/Clear: O(1); Clone: O(r*c).
package dense

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lss/index"
	"github.com/katalvlaran/lss/numeric"
)

// Orientation selects the memory layout of a Matrix.
type Orientation int

const (
	// RowMajor stores rows contiguously.
	RowMajor Orientation = iota
	// ColumnMajor stores columns contiguously.
	ColumnMajor
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// ---------- formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense rows×cols block of T.
//   - r,c hold dimensions; either may be zero (an empty matrix).
//   - data has length r*c and is laid out according to orient.
type Matrix[T numeric.Number] struct {
	r, c   int
	orient Orientation
	data   []T
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates a rows×cols matrix with every element set to value.
// MAIN DESCRIPTION:
//   - Public constructor; zero dimensions are legal and yield an empty matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and broadcast value.
//
// Errors:
//   - ErrInvalidDimensions (wrapped with the requested shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T numeric.Number](rows, cols int, orient Orientation, value T) (*Matrix[T], error) {
	if !validDims(rows, cols) {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	m := &Matrix[T]{r: rows, c: cols, orient: orient, data: make([]T, rows*cols)}
	m.Fill(value)

	return m, nil
}

// validDims reports whether rows and cols are non-negative with a
// representable product.
func validDims(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// FromGrid builds a matrix from a two-level grid.
// MAIN DESCRIPTION:
//   - Ingest the [outer][inner] grids produced by the file readers.
//
// Implementation:
//   - Stage 1: derive rows/cols from the grid and gridRowOriented
//     (grid[row][col] when true, grid[col][row] otherwise).
//   - Stage 2: reject ragged grids with ErrDimensionMismatch.
//   - Stage 3: copy every element into the requested layout.
//
// Errors:
//   - ErrDimensionMismatch when inner slices differ in length.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGrid[T numeric.Number](grid [][]T, gridRowOriented bool, orient Orientation) (*Matrix[T], error) {
	outer, inner := len(grid), 0
	if outer > 0 {
		inner = len(grid[0])
	}
	for k, line := range grid {
		if len(line) != inner {
			return nil, denseErrorf(ctxGrid, k, len(line), ErrDimensionMismatch)
		}
	}
	rows, cols := outer, inner
	if !gridRowOriented {
		rows, cols = inner, outer
	}
	m := &Matrix[T]{r: rows, c: cols, orient: orient, data: make([]T, rows*cols)}
	for o, line := range grid {
		for i, v := range line {
			if gridRowOriented {
				m.data[m.offset(o, i)] = v
			} else {
				m.data[m.offset(i, o)] = v
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols().
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Size reports the shape as an index pair.
func (m *Matrix[T]) Size() index.Pair { return index.NewPair(uint(m.r), uint(m.c)) }

// Orientation reports the memory layout.
func (m *Matrix[T]) Orientation() Orientation { return m.orient }

// IsEmpty reports whether the matrix holds no elements.
func (m *Matrix[T]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// LeadingDim is the stride between consecutive columns (column-major) or
// rows (row-major), never less than 1.
func (m *Matrix[T]) LeadingDim() int {
	if m.orient == ColumnMajor {
		return max(1, m.r)
	}

	return max(1, m.c)
}

// Data exposes the flat buffer in the matrix's layout. Mutations are visible.
func (m *Matrix[T]) Data() []T { return m.data }

// offset maps (row, col) onto the flat buffer without bounds checks.
func (m *Matrix[T]) offset(row, col int) int {
	if m.orient == ColumnMajor {
		return col*m.r + row
	}

	return row*m.c + col
}

// indexOf bounds-checks (row, col) and returns its flat offset.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Resize reshapes the matrix to rows×cols and sets every element to value.
// Previous contents are discarded; the buffer is reused when large enough.
func (m *Matrix[T]) Resize(rows, cols int, value T) error {
	if !validDims(rows, cols) {
		return denseErrorf(ctxResize, rows, cols, ErrInvalidDimensions)
	}
	n := rows * cols
	if cap(m.data) >= n {
		m.data = m.data[:n]
	} else {
		m.data = make([]T, n)
	}
	m.r, m.c = rows, cols
	m.Fill(value)

	return nil
}

// Assign overwrites the elements from values given in logical row-major
// order (independent of the layout).
// MAIN DESCRIPTION:
//   - len(values)==0: no-op; len(values)==1: broadcast;
//     len(values)==rows*cols: element-wise copy.
//
// Errors:
//   - ErrDimensionMismatch for any other length.
func (m *Matrix[T]) Assign(values []T) error {
	switch len(values) {
	case 0:
		return nil
	case 1:
		m.Fill(values[0])
		return nil
	case m.r * m.c:
	default:
		return denseErrorf(ctxAssign, m.r, m.c, fmt.Errorf("%w: %d values", ErrDimensionMismatch, len(values)))
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.data[m.offset(i, j)] = values[i*m.c+j]
		}
	}

	return nil
}

// Clear releases the contents, leaving a 0×0 matrix with the same layout.
func (m *Matrix[T]) Clear() {
	m.r, m.c = 0, 0
	m.data = nil
}

// Swap exchanges shape and buffer with o without copying. Layouts must match.
func (m *Matrix[T]) Swap(o *Matrix[T]) error {
	if o == nil {
		return ErrNilMatrix
	}
	if m.orient != o.orient {
		return fmt.Errorf("Matrix.Swap(%s,%s): %w", m.orient, o.orient, ErrDimensionMismatch)
	}
	m.r, o.r = o.r, m.r
	m.c, o.c = o.c, m.c
	m.data, o.data = o.data, m.data

	return nil
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, orient: m.orient, data: cp}
}

// Equal reports whether o has the same shape and elements (layout ignored).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.data[m.offset(i, j)] != o.data[o.offset(i, j)] {
				return false
			}
		}
	}

	return true
}

// Mat returns a float64 gonum copy of m, or nil when m is empty.
func (m *Matrix[T]) Mat() *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	buf := make([]float64, m.r*m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			buf[i*m.c+j] = float64(m.data[m.offset(i, j)])
		}
	}

	return mat.NewDense(m.r, m.c, buf)
}

// String renders the matrix row by row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[m.offset(i, j)])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
