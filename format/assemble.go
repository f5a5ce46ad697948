// SPDX-License-Identifier: MIT

package format

import (
	"fmt"

	"github.com/katalvlaran/lss/index"
)

// parsed is the backend-neutral result of parsing: a size and the stored
// entries as 0-based coordinates (symmetric storage already expanded).
type parsed struct {
	size   index.Pair
	coords []index.Coord
}

// dense materializes p; later duplicates overwrite earlier ones. Sizes
// above maxDenseElements are rejected before anything is allocated.
func (p parsed) dense(rowOriented bool) (DenseData[float64], error) {
	rows, cols := p.size.Dims()
	if rows != 0 && cols > maxDenseElements/rows {
		return DenseData[float64]{}, fmt.Errorf("format: dense grid %dx%d too large: %w", rows, cols, ErrParse)
	}
	outer, inner := rows, cols
	if !rowOriented {
		outer, inner = cols, rows
	}
	// one backing buffer, sliced per outer index
	buf := make([]float64, outer*inner)
	grid := make([][]float64, outer)
	for o := range grid {
		grid[o] = buf[o*inner : (o+1)*inner : (o+1)*inner]
	}
	for _, c := range p.coords {
		if rowOriented {
			grid[c.Pos.I][c.Pos.J] = c.Value
		} else {
			grid[c.Pos.J][c.Pos.I] = c.Value
		}
	}

	return DenseData[float64]{Size: p.size, RowOriented: rowOriented, Grid: grid}, nil
}

// sparse sorts the entries by orientation and shifts indices to base.
func (p parsed) sparse(rowOriented bool, base int) (SparseData[float64], error) {
	if base != 0 && base != 1 {
		return SparseData[float64]{}, fmt.Errorf("format: index base %d: %w", base, ErrParse)
	}
	index.SortCoords(p.coords, rowOriented)

	n := len(p.coords)
	out := SparseData[float64]{
		Size:        p.size,
		RowOriented: rowOriented,
		Base:        base,
		Values:      make([]float64, n),
		Rows:        make([]int, n),
		Cols:        make([]int, n),
	}
	for k, c := range p.coords {
		out.Values[k] = c.Value
		out.Rows[k] = int(c.Pos.I)
		out.Cols[k] = int(c.Pos.J)
	}
	shift := index.OffsetShift[int](base)
	out.Rows = shift(out.Rows, 0)
	out.Cols = shift(out.Cols, 0)

	return out, nil
}

// expand appends the mirrored entry for symmetric (sign=+1) or
// skew-symmetric (sign=-1) storage; diagonal entries are not mirrored.
func expand(coords []index.Coord, c index.Coord, sign float64) []index.Coord {
	coords = append(coords, c)
	if sign != 0 && !c.Pos.IsDiagonal() {
		coords = append(coords, index.NewCoord(c.Pos.J, c.Pos.I, sign*c.Value))
	}

	return coords
}
