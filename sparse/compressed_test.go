// SPDX-License-Identifier: MIT

package sparse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lss/dense"
	"github.com/katalvlaran/lss/index"
	"github.com/katalvlaran/lss/source"
	"github.com/katalvlaran/lss/sparse"
)

// sample holds
//
//	4 0 1
//	0 5 0
//	2 0 6
//
// in scrambled order, with (2,2) split over two duplicates.
func sample() []index.Coord {
	return []index.Coord{
		index.NewCoord(2, 2, 4),
		index.NewCoord(0, 2, 1),
		index.NewCoord(1, 1, 5),
		index.NewCoord(2, 0, 2),
		index.NewCoord(0, 0, 4),
		index.NewCoord(2, 2, 2),
	}
}

func TestBuild_CSR(t *testing.T) {
	m, err := sparse.Build[float64](index.NewPair(3, 3), sample())
	require.NoError(t, err)
	require.False(t, m.ColumnOriented())
	require.Equal(t, 0, m.Base())
	require.Equal(t, []int{0, 2, 3, 5}, m.Ptr())
	require.Equal(t, []int{0, 2, 1, 0, 2}, m.Idx())
	require.Equal(t, []float64{4, 1, 5, 2, 6}, m.Val())
	require.Equal(t, 5, m.NNZ())
	require.Equal(t, 6.0, m.At(2, 2))
	require.Zero(t, m.At(1, 0))
	require.Zero(t, m.At(7, 0))
}

func TestBuild_CSCOneBased(t *testing.T) {
	m, err := sparse.Build[float32](index.NewPair(3, 3), sample(),
		sparse.WithColumnOriented(), sparse.WithIndexBase(1))
	require.NoError(t, err)
	require.True(t, m.ColumnOriented())
	require.Equal(t, []int{1, 3, 4, 6}, m.Ptr())
	require.Equal(t, []int{1, 3, 2, 1, 3}, m.Idx())
	require.Equal(t, []float32{4, 2, 5, 1, 6}, m.Val())
	require.Equal(t, float32(1), m.At(0, 2))
	require.Equal(t, float32(2), m.At(2, 0))
}

func TestBuild_DiagonalFirst(t *testing.T) {
	// 0 7 0
	// 1 0 2
	// 0 0 9
	coords := []index.Coord{
		index.NewCoord(1, 2, 2),
		index.NewCoord(0, 1, 7),
		index.NewCoord(2, 2, 9),
		index.NewCoord(1, 0, 1),
	}
	m, err := sparse.Build[float64](index.NewPair(3, 3), coords, sparse.WithDiagonalFirst())
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 5, 6}, m.Ptr())
	require.Equal(t, []int{0, 1, 1, 0, 2, 2}, m.Idx())
	require.Equal(t, []float64{0, 7, 0, 1, 2, 9}, m.Val())
	require.Equal(t, 2.0, m.At(1, 2))

	// every index vector starts with its diagonal, the rest ascending
	ptr, idx := m.Ptr(), m.Idx()
	for row := 0; row < 3; row++ {
		vec := idx[ptr[row]:ptr[row+1]]
		assert.Equal(t, row, vec[0])
		for k := 2; k < len(vec); k++ {
			assert.Less(t, vec[k-1], vec[k])
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := sparse.Build[float64](index.NewPair(0, 3), nil)
	require.ErrorIs(t, err, sparse.ErrInvalidSize)

	_, err = sparse.Build[float64](index.Invalid(), nil)
	require.ErrorIs(t, err, sparse.ErrInvalidSize)

	_, err = sparse.Build[float64](index.NewPair(2, 3), nil, sparse.WithDiagonalFirst())
	require.ErrorIs(t, err, sparse.ErrNonSquare)

	_, err = sparse.Build[float64](index.NewPair(2, 2), []index.Coord{index.NewCoord(0, 2, 1)})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	require.Panics(t, func() { sparse.WithIndexBase(2) })
}

func TestBuild_EmptyRows(t *testing.T) {
	m, err := sparse.Build[int](index.NewPair(3, 2), []index.Coord{
		index.NewCoord(2, 1, 2.5),
		index.NewCoord(2, 1, 2.5),
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 1}, m.Ptr())
	require.Equal(t, []int{5}, m.Val())
}

func TestCoordsAndDense(t *testing.T) {
	m, err := sparse.Build[float64](index.NewPair(3, 3), sample(), sparse.WithColumnOriented())
	require.NoError(t, err)

	require.Equal(t, []index.Coord{
		index.NewCoord(0, 0, 4),
		index.NewCoord(2, 0, 2),
		index.NewCoord(1, 1, 5),
		index.NewCoord(0, 2, 1),
		index.NewCoord(2, 2, 6),
	}, m.Coords())

	d, err := m.Dense(dense.RowMajor)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0, 1, 0, 5, 0, 2, 0, 6}, d.Data())
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	mtx := "%%MatrixMarket matrix coordinate real symmetric\n3 3 4\n1 1 2\n2 1 -1\n2 2 2\n3 3 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.mtx"), []byte(mtx), 0o600))

	m, err := sparse.FromFile[float64]("k.mtx", sparse.WithSource(source.NewLocal(dir)), sparse.WithIndexBase(1))
	require.NoError(t, err)
	require.Equal(t, index.NewPair(3, 3), m.Size())
	require.Equal(t, []int{1, 3, 5, 6}, m.Ptr())
	require.Equal(t, []int{1, 2, 1, 2, 3}, m.Idx())
	require.Equal(t, []float64{2, -1, -1, 2, 1}, m.Val())

	_, err = sparse.FromFile[float64]("k.txt", sparse.WithSource(source.NewLocal(dir)))
	require.Error(t, err)
}
