// SPDX-License-Identifier: MIT

package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lss/format"
	"github.com/katalvlaran/lss/index"
)

func TestMatrixMarket_DenseOrientation(t *testing.T) {
	var mm format.MatrixMarket

	byRow, err := mm.ReadDense(strings.NewReader(mmGeneral), true)
	require.NoError(t, err)
	require.Equal(t, index.NewPair(3, 3), byRow.Size)
	require.True(t, byRow.RowOriented)
	require.Equal(t, mmGeneralRows, byRow.Grid)

	byCol, err := mm.ReadDense(strings.NewReader(mmGeneral), false)
	require.NoError(t, err)
	require.False(t, byCol.RowOriented)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, byRow.Grid[r][c], byCol.Grid[c][r], "(%d,%d)", r, c)
			require.Equal(t, byRow.At(r, c), byCol.At(r, c))
		}
	}
}

func TestMatrixMarket_DenseRectangular(t *testing.T) {
	in := "%%MatrixMarket matrix coordinate real general\n2 3 2\n1 3 9\n2 1 -1\n"
	var mm format.MatrixMarket

	byRow, err := mm.ReadDense(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Len(t, byRow.Grid, 2)
	require.Len(t, byRow.Grid[0], 3)
	require.Equal(t, [][]float64{{0, 0, 9}, {-1, 0, 0}}, byRow.Grid)

	byCol, err := mm.ReadDense(strings.NewReader(in), false)
	require.NoError(t, err)
	require.Len(t, byCol.Grid, 3)
	require.Len(t, byCol.Grid[0], 2)
	require.Equal(t, [][]float64{{0, -1}, {0, 0}, {9, 0}}, byCol.Grid)
}

func TestMatrixMarket_Sparse(t *testing.T) {
	var mm format.MatrixMarket

	byRow, err := mm.ReadSparse(strings.NewReader(mmGeneral), true, 1)
	require.NoError(t, err)
	require.Equal(t, 1, byRow.Base)
	require.Equal(t, []float64{1, 7, 5.5, -2}, byRow.Values)
	require.Equal(t, []int{1, 1, 2, 3}, byRow.Rows)
	require.Equal(t, []int{1, 3, 3, 2}, byRow.Cols)

	byCol, err := mm.ReadSparse(strings.NewReader(mmGeneral), false, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2, 7, 5.5}, byCol.Values)
	require.Equal(t, []int{0, 2, 0, 1}, byCol.Rows)
	require.Equal(t, []int{0, 1, 2, 2}, byCol.Cols)
	require.Equal(t, 4, byCol.Len())

	coords := byRow.Coords()
	require.Equal(t, index.NewCoord(0, 2, 7), coords[1])
}

func TestMatrixMarket_Storage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]float64
	}{
		{
			name: "symmetric",
			in:   "%%MatrixMarket matrix coordinate real symmetric\n2 2 2\n1 1 4\n2 1 1\n",
			want: [][]float64{{4, 1}, {1, 0}},
		},
		{
			name: "skew-symmetric",
			in:   "%%MatrixMarket matrix coordinate real skew-symmetric\n2 2 1\n2 1 3\n",
			want: [][]float64{{0, -3}, {3, 0}},
		},
		{
			name: "pattern",
			in:   "%%MatrixMarket matrix coordinate pattern general\n2 2 2\n1 2\n2 1\n",
			want: [][]float64{{0, 1}, {1, 0}},
		},
		{
			name: "integer",
			in:   "%%MatrixMarket matrix coordinate integer general\n1 2 1\n1 2 -5\n",
			want: [][]float64{{0, -5}},
		},
		{
			name: "array column-major",
			in:   "%%MatrixMarket matrix array real general\n2 2\n1\n2\n3\n4\n",
			want: [][]float64{{1, 3}, {2, 4}},
		},
		{
			name: "array symmetric lower triangle",
			in:   "%%MatrixMarket matrix array real symmetric\n2 2\n1\n2\n3\n",
			want: [][]float64{{1, 2}, {2, 3}},
		},
		{
			name: "duplicate entries keep the last",
			in:   "%%MatrixMarket matrix coordinate real general\n1 1 2\n1 1 2\n1 1 8\n",
			want: [][]float64{{8}},
		},
		{
			name: "blank lines and comments between entries",
			in:   "%%MatrixMarket matrix coordinate real general\n\n%c\n1 1 1\n\n% x\n1 1 3.5\n",
			want: [][]float64{{3.5}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := format.MatrixMarket{}.ReadDense(strings.NewReader(tc.in), true)
			require.NoError(t, err)
			require.Equal(t, tc.want, d.Grid)
		})
	}
}

func TestMatrixMarket_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no banner", "3 3 1\n1 1 1\n"},
		{"complex field", "%%MatrixMarket matrix coordinate complex general\n1 1 1\n1 1 1 0\n"},
		{"hermitian", "%%MatrixMarket matrix coordinate real hermitian\n1 1 1\n1 1 1\n"},
		{"truncated entries", "%%MatrixMarket matrix coordinate real general\n2 2 3\n1 1 1\n"},
		{"index out of range", "%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 1\n"},
		{"zero index", "%%MatrixMarket matrix coordinate real general\n2 2 1\n0 1 1\n"},
		{"bad value", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 abc\n"},
		{"zero size", "%%MatrixMarket matrix coordinate real general\n0 2 0\n"},
		{"symmetric non-square", "%%MatrixMarket matrix coordinate real symmetric\n2 3 0\n"},
		{"array pattern", "%%MatrixMarket matrix array pattern general\n1 1\n"},
		{"entry count exceeds size", "%%MatrixMarket matrix coordinate real general\n2 2 9223372036854775807\n"},
		{"negative entry count", "%%MatrixMarket matrix coordinate real general\n2 2 -1\n"},
		{"array size overflows", "%%MatrixMarket matrix array real general\n3037000500 3037000500\n"},
		{"coordinate size overflows", "%%MatrixMarket matrix coordinate real general\n9223372036854775807 2 0\n"},
		{"array truncated", "%%MatrixMarket matrix array real general\n100000 100000\n1\n2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := format.MatrixMarket{}.ReadDense(strings.NewReader(tc.in), true)
			require.ErrorIs(t, err, format.ErrParse)

			_, err = format.MatrixMarket{}.ReadSparse(strings.NewReader(tc.in), true, 0)
			require.ErrorIs(t, err, format.ErrParse)
		})
	}
}

func TestMatrixMarket_HugeDenseRejected(t *testing.T) {
	in := "%%MatrixMarket matrix coordinate real general\n2147483648 2 1\n1 1 7\n"

	_, err := format.MatrixMarket{}.ReadDense(strings.NewReader(in), true)
	require.ErrorIs(t, err, format.ErrParse)

	s, err := format.MatrixMarket{}.ReadSparse(strings.NewReader(in), true, 0)
	require.NoError(t, err)
	require.Equal(t, index.NewPair(2147483648, 2), s.Size)
	require.Equal(t, []float64{7}, s.Values)
}

func TestSparse_RejectsBadBase(t *testing.T) {
	_, err := format.MatrixMarket{}.ReadSparse(strings.NewReader(mmGeneral), true, 2)
	require.ErrorIs(t, err, format.ErrParse)
}

func TestHarwellBoeing_Dense(t *testing.T) {
	var hb format.HarwellBoeing

	d, err := hb.ReadDense(strings.NewReader(hbSample()), true)
	require.NoError(t, err)
	require.Equal(t, index.NewPair(3, 3), d.Size)
	require.Equal(t, sampleRows, d.Grid)

	s, err := hb.ReadSparse(strings.NewReader(hbSample()), false, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 2, 5, 1, 6}, s.Values)
	require.Equal(t, []int{1, 3, 2, 1, 3}, s.Rows)
	require.Equal(t, []int{1, 1, 2, 3, 3}, s.Cols)
}

func TestHarwellBoeing_Symmetric(t *testing.T) {
	in := hbFile("RSA", 2, 2, []int{1, 3, 4}, []int{1, 2, 2}, []float64{2, -1, 2})

	d, err := format.HarwellBoeing{}.ReadDense(strings.NewReader(in), true)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, -1}, {-1, 2}}, d.Grid)
}

func TestHarwellBoeing_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"truncated header", "title\n1 1 1 1\n"},
		{"complex type", hbFile("CUA", 1, 1, []int{1, 2}, []int{1}, []float64{1})},
		{"elemental", hbFile("RUE", 1, 1, []int{1, 2}, []int{1}, []float64{1})},
		{"pointer mismatch", hbFile("RUA", 2, 2, []int{1, 2, 4}, []int{1, 2}, []float64{1, 2})},
		{"row out of range", hbFile("RUA", 2, 2, []int{1, 2, 3}, []int{1, 3}, []float64{1, 2})},
		{"missing values", strings.TrimSuffix(hbSample(), "  1.00000000E+00  6.00000000E+00\n")},
		{"entry count exceeds size", hbFile("RUA", 1, 1, []int{1, 3}, []int{1, 1}, []float64{1, 2})},
		{"size overflows", hbFile("RUA", 3037000500, 3037000500, []int{1, 2}, []int{1}, []float64{1})},
		{"truncated pointers", hbFile("RUA", 1, 100000000, []int{1, 2}, []int{1}, []float64{1})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := format.HarwellBoeing{}.ReadDense(strings.NewReader(tc.in), true)
			require.ErrorIs(t, err, format.ErrParse)
		})
	}
}

func TestFortranFormat(t *testing.T) {
	tests := []struct {
		in   string
		want format.FortranFormat
	}{
		{"(10I8)", format.FortranFormat{Repeat: 10, Kind: 'I', Width: 8}},
		{"(4E20.12)", format.FortranFormat{Repeat: 4, Kind: 'E', Width: 20}},
		{"(1P,4D20.12)", format.FortranFormat{Repeat: 4, Kind: 'D', Width: 20, Scale: 1}},
		{"(1P5E16.8)", format.FortranFormat{Repeat: 5, Kind: 'E', Width: 16, Scale: 1}},
		{"(f10.3)", format.FortranFormat{Repeat: 1, Kind: 'F', Width: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := format.ExportedParseFortranFormat(tc.in)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}

	_, ok := format.ExportedParseFortranFormat("(A8)")
	require.False(t, ok)

	v, err := format.ExportedFortranReal("(3D16.8)", "1.5D+01")
	require.NoError(t, err)
	require.InDelta(t, 15.0, v, 1e-12)

	v, err = format.ExportedFortranReal("(1P,3F10.3)", "25.0")
	require.NoError(t, err)
	require.InDelta(t, 2.5, v, 1e-12)

	v, err = format.ExportedFortranReal("(3E16.8)", "0.123-100")
	require.NoError(t, err)
	require.InEpsilon(t, 0.123e-100, v, 1e-12)

	v, err = format.ExportedFortranReal("(1P,3E16.8)", " 1.5+3")
	require.NoError(t, err)
	require.InDelta(t, 1500.0, v, 1e-9)

	v, err = format.ExportedFortranReal("(3E16.8)", "-2.5")
	require.NoError(t, err)
	require.InDelta(t, -2.5, v, 1e-12)

	require.Equal(t, []string{"-1.0E+00", "-2.0E+00"},
		format.ExportedFortranFields("(2E8.1)", "-1.0E+00-2.0E+00"))
}

func TestCSR(t *testing.T) {
	var c format.CSR

	d, err := c.ReadDense(strings.NewReader(csrSample), true)
	require.NoError(t, err)
	require.Equal(t, sampleRows, d.Grid)

	s, err := c.ReadSparse(strings.NewReader(csrSample), true, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 1, 5, 2, 6}, s.Values)
	require.Equal(t, []int{0, 0, 1, 2, 2}, s.Rows)
	require.Equal(t, []int{0, 2, 1, 0, 2}, s.Cols)
}

func TestCSR_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"pointers do not start at 1", "2 2 1\n0 1 1\n1\n1\n"},
		{"pointer count mismatch", "2 2 2\n1 2 2\n1 2\n1 2\n"},
		{"decreasing pointers", "2 2 1\n1 3 2\n1\n1\n"},
		{"column out of range", "1 2 1\n1 2\n3\n1\n"},
		{"missing values", "1 2 2\n1 3\n1 2\n1\n"},
		{"bad integer", "1 x 1\n"},
		{"row count at limit", "9223372036854775807 1 0\n"},
		{"entry count exceeds size", "2 2 5\n1 3 6\n1 2\n1 2\n"},
		{"huge entry count", "2 2 9223372036854775807\n"},
		{"truncated pointers", "100000000 1 0\n1 1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := format.CSR{}.ReadDense(strings.NewReader(tc.in), true)
			require.ErrorIs(t, err, format.ErrParse)
		})
	}
}

func TestReaders_AgreeOnSameMatrix(t *testing.T) {
	fromHB, err := format.HarwellBoeing{}.ReadDense(strings.NewReader(hbSample()), false)
	require.NoError(t, err)
	fromCSR, err := format.CSR{}.ReadDense(strings.NewReader(csrSample), false)
	require.NoError(t, err)
	require.Equal(t, fromHB, fromCSR)
}
