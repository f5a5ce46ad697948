// SPDX-License-Identifier: MIT

package index

import "slices"

// Coord is one matrix element: a position and its value.
// Uniqueness of positions is not enforced here; pattern builders establish it.
type Coord struct {
	Pos   Pair
	Value float64
}

// NewCoord returns the entry (i, j) = v.
func NewCoord(i, j uint, v float64) Coord {
	return Coord{Pos: Pair{I: i, J: j}, Value: v}
}

// ByRow orders entries row-major (row, then column).
func ByRow(a, b Coord) int { return a.Pos.Compare(b.Pos) }

// ByColumn orders entries column-major (column, then row).
func ByColumn(a, b Coord) int {
	return Pair{I: a.Pos.J, J: a.Pos.I}.Compare(Pair{I: b.Pos.J, J: b.Pos.I})
}

// RowEqualTo returns a predicate selecting entries in row i.
func RowEqualTo(i uint) func(Coord) bool {
	return func(c Coord) bool { return c.Pos.I == i }
}

// ColumnEqualTo returns a predicate selecting entries in column j.
func ColumnEqualTo(j uint) func(Coord) bool {
	return func(c Coord) bool { return c.Pos.J == j }
}

// SortCoords sorts entries in place, row-major when rowOriented and
// column-major otherwise. The sort is stable: duplicates keep input order.
func SortCoords(coords []Coord, rowOriented bool) {
	if rowOriented {
		slices.SortStableFunc(coords, ByRow)

		return
	}
	slices.SortStableFunc(coords, ByColumn)
}

// Filter returns the entries satisfying keep, in input order.
func Filter(coords []Coord, keep func(Coord) bool) []Coord {
	out := make([]Coord, 0, len(coords))
	for _, c := range coords {
		if keep(c) {
			out = append(out, c)
		}
	}

	return out
}
