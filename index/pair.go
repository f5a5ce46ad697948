// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"math"
)

// Unbounded is the sentinel coordinate: "no extent" for a size, "nowhere" for a position.
const Unbounded uint = math.MaxUint

// Pair is a 2D index (I=row, J=col), ordered row-major.
// Used as a size it must satisfy IsValidSize; used as a position it need not.
type Pair struct {
	I uint // row
	J uint // column
}

// NewPair returns the pair (i, j).
func NewPair(i, j uint) Pair { return Pair{I: i, J: j} }

// Invalid returns the sentinel pair (Unbounded, Unbounded).
func Invalid() Pair { return Pair{I: Unbounded, J: Unbounded} }

// Compare orders p and o lexicographically, row first.
// Returns -1, 0 or +1, suitable for slices.SortFunc.
func (p Pair) Compare(o Pair) int {
	switch {
	case p.I < o.I:
		return -1
	case p.I > o.I:
		return 1
	case p.J < o.J:
		return -1
	case p.J > o.J:
		return 1
	}

	return 0
}

// Less reports p < o in row-major order.
func (p Pair) Less(o Pair) bool { return p.Compare(o) < 0 }

// Greater reports p > o in row-major order.
func (p Pair) Greater(o Pair) bool { return o.Less(p) }

// Equal reports whether both coordinates match.
func (p Pair) Equal(o Pair) bool { return p.I == o.I && p.J == o.J }

// NotEqual reports whether any coordinate differs.
func (p Pair) NotEqual(o Pair) bool { return p.I != o.I || p.J != o.J }

// Invalidate resets p to the sentinel and returns it for chaining.
func (p *Pair) Invalidate() *Pair {
	*p = Invalid()

	return p
}

// IsValidSize reports whether p describes a finite, positive extent:
// both coordinates strictly between 0 and Unbounded.
func (p Pair) IsValidSize() bool {
	return p.I > 0 && p.J > 0 && p.I < Unbounded && p.J < Unbounded
}

// IsSquareSize reports I == J.
func (p Pair) IsSquareSize() bool { return p.I == p.J }

// IsDiagonal reports I == J (position on the main diagonal).
func (p Pair) IsDiagonal() bool { return p.IsSquareSize() }

// Dims returns the pair as int (rows, cols). Callers must not pass the sentinel.
func (p Pair) Dims() (int, int) { return int(p.I), int(p.J) }

// String renders "(i,j)", or "(inf,inf)" style markers for sentinel coordinates.
func (p Pair) String() string {
	return fmt.Sprintf("(%s,%s)", coordString(p.I), coordString(p.J))
}

func coordString(v uint) string {
	if v == Unbounded {
		return "inf"
	}

	return fmt.Sprintf("%d", v)
}
