// SPDX-License-Identifier: MIT
package index_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lss/index"
	"github.com/stretchr/testify/require"
)

func sampleCoords() []index.Coord {
	return []index.Coord{
		index.NewCoord(1, 0, 3),
		index.NewCoord(0, 2, 2),
		index.NewCoord(0, 0, 1),
		index.NewCoord(2, 1, 4),
	}
}

func positions(cs []index.Coord) []index.Pair {
	out := make([]index.Pair, len(cs))
	for k, c := range cs {
		out[k] = c.Pos
	}

	return out
}

func TestSortCoordsByRow(t *testing.T) {
	cs := sampleCoords()
	index.SortCoords(cs, true)
	require.Equal(t, []index.Pair{{0, 0}, {0, 2}, {1, 0}, {2, 1}}, positions(cs))
}

func TestSortCoordsByColumn(t *testing.T) {
	cs := sampleCoords()
	index.SortCoords(cs, false)
	require.Equal(t, []index.Pair{{0, 0}, {1, 0}, {2, 1}, {0, 2}}, positions(cs))
}

func TestSortCoordsStable(t *testing.T) {
	cs := []index.Coord{
		index.NewCoord(1, 1, 10),
		index.NewCoord(0, 0, 5),
		index.NewCoord(1, 1, 20),
	}
	index.SortCoords(cs, true)
	require.Equal(t, 5.0, cs[0].Value)
	require.Equal(t, 10.0, cs[1].Value) // duplicates keep input order
	require.Equal(t, 20.0, cs[2].Value)
}

func TestRowColumnPredicates(t *testing.T) {
	cs := sampleCoords()

	row0 := index.Filter(cs, index.RowEqualTo(0))
	require.Len(t, row0, 2)
	for _, c := range row0 {
		require.Equal(t, uint(0), c.Pos.I)
	}

	col0 := index.Filter(cs, index.ColumnEqualTo(0))
	require.Len(t, col0, 2)

	k := slices.IndexFunc(cs, index.RowEqualTo(2))
	require.Equal(t, 3, k)
	require.Equal(t, -1, slices.IndexFunc(cs, index.ColumnEqualTo(9)))
}
