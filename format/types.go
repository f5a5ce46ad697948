// SPDX-License-Identifier: MIT

package format

import (
	"io"

	"github.com/katalvlaran/lss/index"
	"github.com/katalvlaran/lss/numeric"
)

// DenseData is a dense matrix read from a file.
// Grid is indexed [row][col] when RowOriented, [col][row] otherwise.
type DenseData[T numeric.Number] struct {
	Size        index.Pair
	RowOriented bool
	Grid        [][]T
}

// At returns element (i, j) regardless of orientation.
func (d DenseData[T]) At(i, j int) T {
	if d.RowOriented {
		return d.Grid[i][j]
	}

	return d.Grid[j][i]
}

// SparseData holds parallel coordinate arrays of the stored entries.
// Entries are sorted row-major when RowOriented and column-major otherwise;
// Rows and Cols are expressed in Base (0 or 1).
type SparseData[T numeric.Number] struct {
	Size        index.Pair
	RowOriented bool
	Base        int
	Values      []T
	Rows        []int
	Cols        []int
}

// Len returns the number of stored entries.
func (d SparseData[T]) Len() int { return len(d.Values) }

// Coords returns the entries as 0-based coordinate entries.
func (d SparseData[T]) Coords() []index.Coord {
	out := make([]index.Coord, len(d.Values))
	for k, v := range d.Values {
		out[k] = index.NewCoord(uint(d.Rows[k]-d.Base), uint(d.Cols[k]-d.Base), float64(v))
	}

	return out
}

// Reader is one on-disk layout.
// Implementations report malformed input as an error wrapping ErrParse.
type Reader interface {
	// Name identifies the backend in diagnostics.
	Name() string
	// ReadDense parses r into a dense grid; absent entries are 0.
	ReadDense(r io.Reader, rowOriented bool) (DenseData[float64], error)
	// ReadSparse parses r into coordinate arrays in the given index base.
	ReadSparse(r io.Reader, rowOriented bool, base int) (SparseData[float64], error)
}
