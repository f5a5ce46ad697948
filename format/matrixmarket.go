// SPDX-License-Identifier: MIT

package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lss/index"
)

const mmBanner = "%%MatrixMarket"

// MatrixMarket reads ".mtx" files in coordinate or array storage.
type MatrixMarket struct{}

// Name implements Reader.
func (MatrixMarket) Name() string { return "matrixmarket" }

// ReadDense implements Reader.
func (m MatrixMarket) ReadDense(r io.Reader, rowOriented bool) (DenseData[float64], error) {
	p, err := m.parse(r)
	if err != nil {
		return DenseData[float64]{}, err
	}

	return p.dense(rowOriented)
}

// ReadSparse implements Reader. Array storage yields every element, zeros included.
func (m MatrixMarket) ReadSparse(r io.Reader, rowOriented bool, base int) (SparseData[float64], error) {
	p, err := m.parse(r)
	if err != nil {
		return SparseData[float64]{}, err
	}

	return p.sparse(rowOriented, base)
}

type mmHeader struct {
	array   bool
	pattern bool
	sign    float64 // 0 general, +1 symmetric, -1 skew-symmetric
}

func (m MatrixMarket) parse(r io.Reader) (parsed, error) {
	name := m.Name()
	ls := newLineScanner(r)

	first, ok := ls.next()
	if !ok {
		if err := ls.err(); err != nil {
			return parsed{}, parseErrorf(name, ls.line, "read: %v", err)
		}
		return parsed{}, parseErrorf(name, 0, "empty input")
	}
	hdr, err := parseBanner(name, first)
	if err != nil {
		return parsed{}, err
	}

	tk := &tokens{ls: ls}
	if hdr.array {
		return m.parseArray(tk, hdr)
	}

	return m.parseCoordinate(tk, hdr)
}

// parseBanner decodes the "%%MatrixMarket matrix <storage> <field> <symmetry>" line.
func parseBanner(name, line string) (mmHeader, error) {
	f := strings.Fields(strings.ToLower(line))
	if len(f) != 5 || f[0] != strings.ToLower(mmBanner) || f[1] != "matrix" {
		return mmHeader{}, parseErrorf(name, 1, "bad banner %q", line)
	}

	var h mmHeader
	switch f[2] {
	case "coordinate":
	case "array":
		h.array = true
	default:
		return mmHeader{}, parseErrorf(name, 1, "storage %q", f[2])
	}
	switch f[3] {
	case "real", "integer", "double":
	case "pattern":
		h.pattern = true
	default:
		return mmHeader{}, parseErrorf(name, 1, "field %q", f[3])
	}
	switch f[4] {
	case "general":
	case "symmetric":
		h.sign = 1
	case "skew-symmetric":
		h.sign = -1
	default:
		return mmHeader{}, parseErrorf(name, 1, "symmetry %q", f[4])
	}
	if h.array && h.pattern {
		return mmHeader{}, parseErrorf(name, 1, "pattern field requires coordinate storage")
	}

	return h, nil
}

func (m MatrixMarket) parseCoordinate(tk *tokens, h mmHeader) (parsed, error) {
	name := m.Name()
	dims, err := tk.ints(name, 3)
	if err != nil {
		return parsed{}, err
	}
	rows, cols, nnz := dims[0], dims[1], dims[2]
	if err = checkCounts(name, tk.ls.line, rows, cols, nnz); err != nil {
		return parsed{}, err
	}
	if h.sign != 0 && rows != cols {
		return parsed{}, parseErrorf(name, tk.ls.line, "symmetric storage of non-square %dx%d", rows, cols)
	}

	coords := make([]index.Coord, 0, min(nnz, maxPrealloc))
	for k := 0; k < nnz; k++ {
		ij, err := tk.ints(name, 2)
		if err != nil {
			return parsed{}, err
		}
		i, j := ij[0], ij[1]
		if i < 1 || i > rows || j < 1 || j > cols {
			return parsed{}, parseErrorf(name, tk.ls.line, "entry (%d,%d) outside %dx%d", i, j, rows, cols)
		}
		v := 1.0
		if !h.pattern {
			tok, ok := tk.next()
			if !ok {
				return parsed{}, tk.eof(name, "value", k, nnz)
			}
			if v, err = strconv.ParseFloat(tok, 64); err != nil {
				return parsed{}, parseErrorf(name, tk.ls.line, "value %q", tok)
			}
		}
		coords = expand(coords, index.NewCoord(uint(i-1), uint(j-1), v), h.sign)
	}

	return parsed{size: index.NewPair(uint(rows), uint(cols)), coords: coords}, nil
}

// parseArray reads column-major array storage. Symmetric arrays list the
// lower triangle only; skew-symmetric ones the strict lower triangle.
func (m MatrixMarket) parseArray(tk *tokens, h mmHeader) (parsed, error) {
	name := m.Name()
	dims, err := tk.ints(name, 2)
	if err != nil {
		return parsed{}, err
	}
	rows, cols := dims[0], dims[1]
	if err = positiveDims(name, tk.ls.line, rows, cols); err != nil {
		return parsed{}, err
	}
	if h.sign != 0 && rows != cols {
		return parsed{}, parseErrorf(name, tk.ls.line, "symmetric storage of non-square %dx%d", rows, cols)
	}

	coords := make([]index.Coord, 0, min(rows*cols, maxPrealloc))
	for j := 0; j < cols; j++ {
		start := 0
		switch h.sign {
		case 1:
			start = j
		case -1:
			start = j + 1
		}
		for i := start; i < rows; i++ {
			v, err := tk.floats(name, 1)
			if err != nil {
				return parsed{}, err
			}
			coords = expand(coords, index.NewCoord(uint(i), uint(j), v[0]), h.sign)
		}
	}

	return parsed{size: index.NewPair(uint(rows), uint(cols)), coords: coords}, nil
}
