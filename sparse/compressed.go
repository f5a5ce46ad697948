// SPDX-License-Identifier: MIT

// Package sparse assembles compressed-row (CSR) and compressed-column (CSC)
// structures from coordinate entries.
//
// Each index vector (the column indices of a row, or the row indices of a
// column) is grown with the index.Sorted pipeline, so it stays strictly
// ascending and duplicate-free however the input is ordered. With
// WithDiagonalFirst the index.SortedDiagonalFirst pipeline then moves the
// diagonal to the front, the layout some CSR solvers expect. Duplicate
// coordinates are summed.
package sparse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lss/dense"
	"github.com/katalvlaran/lss/format"
	"github.com/katalvlaran/lss/index"
	"github.com/katalvlaran/lss/numeric"
)

// Compressed is a CSR or CSC matrix.
// For outer index o (row for CSR, column for CSC) the entries are
// Idx[Ptr[o]-base : Ptr[o+1]-base] with values in Val at the same positions.
type Compressed[T numeric.Number] struct {
	size          index.Pair
	colOriented   bool
	diagonalFirst bool
	base          int
	ptr           []int
	idx           []int
	val           []T
}

// Build assembles a compressed matrix of the given size from coords.
func Build[T numeric.Number](size index.Pair, coords []index.Coord, opts ...Option) (*Compressed[T], error) {
	o := gatherOptions(opts...)
	if !size.IsValidSize() {
		return nil, fmt.Errorf("sparse: Build%s: %w", size, ErrInvalidSize)
	}
	if o.DiagonalFirst && !size.IsSquareSize() {
		return nil, fmt.Errorf("sparse: Build%s: %w", size, ErrNonSquare)
	}
	for _, c := range coords {
		if c.Pos.I >= size.I || c.Pos.J >= size.J {
			return nil, fmt.Errorf("sparse: Build%s: entry %s: %w", size, c.Pos, ErrOutOfRange)
		}
	}

	rows, cols := size.Dims()
	outer := rows
	if o.ColumnOriented {
		outer = cols
	}
	split := func(c index.Coord) (int, int) {
		if o.ColumnOriented {
			return int(c.Pos.J), int(c.Pos.I)
		}
		return int(c.Pos.I), int(c.Pos.J)
	}

	// index vectors
	sorted := index.Sorted[int]()
	vecs := make([][]int, outer)
	for _, c := range coords {
		out, in := split(c)
		vecs[out] = sorted.Apply(vecs[out], in)
	}
	if o.DiagonalFirst {
		diag := index.SortedDiagonalFirst[int]()
		for out := range vecs {
			vecs[out] = diag.Apply(vecs[out], out)
		}
	}

	m := &Compressed[T]{
		size:          size,
		colOriented:   o.ColumnOriented,
		diagonalFirst: o.DiagonalFirst,
		base:          o.Base,
		ptr:           make([]int, outer+1),
	}
	for out, v := range vecs {
		m.ptr[out+1] = m.ptr[out] + len(v)
	}
	m.idx = make([]int, 0, m.ptr[outer])
	for _, v := range vecs {
		m.idx = append(m.idx, v...)
	}

	// values, summed in double precision before conversion
	sums := make([]float64, len(m.idx))
	for _, c := range coords {
		out, in := split(c)
		k, _ := m.locate(out, in)
		sums[k] += c.Value
	}
	m.val = numeric.ConvertSlice[T](sums)

	if m.base != 0 {
		shift := index.OffsetShift[int](m.base)
		m.ptr = shift(m.ptr, 0)
		m.idx = shift(m.idx, 0)
	}

	return m, nil
}

// FromFile reads name with format.ReadSparse and assembles it. The stored
// size of the file is kept; options choose the compressed layout.
func FromFile[T numeric.Number](name string, opts ...Option) (*Compressed[T], error) {
	o := gatherOptions(opts...)
	data, err := format.ReadSparse[float64](name, !o.ColumnOriented, 0, o.Read...)
	if err != nil {
		return nil, err
	}

	return Build[T](data.Size, data.Coords(), opts...)
}

// locate finds the position of inner index in within outer vector out using
// 0-based pointers; it must run before the base shift.
func (m *Compressed[T]) locate(out, in int) (int, bool) {
	lo, hi := m.ptr[out], m.ptr[out+1]
	if m.diagonalFirst && lo < hi {
		if m.idx[lo] == in {
			return lo, true
		}
		lo++
	}
	k, ok := slices.BinarySearch(m.idx[lo:hi], in)

	return lo + k, ok
}

// Size returns the matrix size.
func (m *Compressed[T]) Size() index.Pair { return m.size }

// NNZ returns the number of stored entries, explicit zeros included.
func (m *Compressed[T]) NNZ() int { return len(m.idx) }

// Base returns the index base of Ptr and Idx.
func (m *Compressed[T]) Base() int { return m.base }

// ColumnOriented reports CSC layout.
func (m *Compressed[T]) ColumnOriented() bool { return m.colOriented }

// Ptr returns the outer pointers (length outer+1) in the index base.
func (m *Compressed[T]) Ptr() []int { return m.ptr }

// Idx returns the inner indices in the index base.
func (m *Compressed[T]) Idx() []int { return m.idx }

// Val returns the stored values.
func (m *Compressed[T]) Val() []T { return m.val }

// At returns the 0-based element (i, j); absent entries are 0.
func (m *Compressed[T]) At(i, j int) T {
	out, in := i, j
	if m.colOriented {
		out, in = j, i
	}
	var zero T
	if out < 0 || out >= len(m.ptr)-1 || in < 0 {
		return zero
	}
	lo, hi := m.ptr[out]-m.base, m.ptr[out+1]-m.base
	for k := lo; k < hi; k++ {
		if m.idx[k]-m.base == in {
			return m.val[k]
		}
	}

	return zero
}

// each visits the stored entries in storage order with 0-based (i, j).
func (m *Compressed[T]) each(fn func(i, j int, v T)) {
	for o := 0; o < len(m.ptr)-1; o++ {
		for k := m.ptr[o] - m.base; k < m.ptr[o+1]-m.base; k++ {
			i, j := o, m.idx[k]-m.base
			if m.colOriented {
				i, j = j, i
			}
			fn(i, j, m.val[k])
		}
	}
}

// Coords returns the stored entries as 0-based coordinates in storage order.
func (m *Compressed[T]) Coords() []index.Coord {
	out := make([]index.Coord, 0, len(m.idx))
	m.each(func(i, j int, v T) {
		out = append(out, index.NewCoord(uint(i), uint(j), float64(v)))
	})

	return out
}

// Dense materializes the matrix in the given layout.
func (m *Compressed[T]) Dense(orient dense.Orientation) (*dense.Matrix[T], error) {
	rows, cols := m.size.Dims()
	d, err := dense.New[T](rows, cols, orient, 0)
	if err != nil {
		return nil, err
	}
	m.each(func(i, j int, v T) {
		if err == nil {
			err = d.Set(i, j, v)
		}
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}
