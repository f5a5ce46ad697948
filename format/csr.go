// SPDX-License-Identifier: MIT

package format

import (
	"io"

	"github.com/katalvlaran/lss/index"
)

// CSR reads ".csr" files: '%' comments, then "rows cols nnz", rows+1 row
// pointers, nnz column indices and nnz values, all indices 1-based.
type CSR struct{}

// Name implements Reader.
func (CSR) Name() string { return "csr" }

// ReadDense implements Reader.
func (c CSR) ReadDense(r io.Reader, rowOriented bool) (DenseData[float64], error) {
	p, err := c.parse(r)
	if err != nil {
		return DenseData[float64]{}, err
	}

	return p.dense(rowOriented)
}

// ReadSparse implements Reader.
func (c CSR) ReadSparse(r io.Reader, rowOriented bool, base int) (SparseData[float64], error) {
	p, err := c.parse(r)
	if err != nil {
		return SparseData[float64]{}, err
	}

	return p.sparse(rowOriented, base)
}

func (c CSR) parse(r io.Reader) (parsed, error) {
	name := c.Name()
	tk := &tokens{ls: newLineScanner(r)}

	dims, err := tk.ints(name, 3)
	if err != nil {
		return parsed{}, err
	}
	rows, cols, nnz := dims[0], dims[1], dims[2]
	if err = checkCounts(name, tk.ls.line, rows, cols, nnz); err != nil {
		return parsed{}, err
	}

	ptr, err := tk.ints(name, rows+1)
	if err != nil {
		return parsed{}, err
	}
	if ptr[0] != 1 || ptr[rows]-1 != nnz {
		return parsed{}, parseErrorf(name, tk.ls.line, "row pointers span [%d,%d), want [1,%d)", ptr[0], ptr[rows], nnz+1)
	}
	for i := 0; i < rows; i++ {
		if ptr[i+1] < ptr[i] {
			return parsed{}, parseErrorf(name, tk.ls.line, "row pointers decrease at row %d", i+1)
		}
	}
	ja, err := tk.ints(name, nnz)
	if err != nil {
		return parsed{}, err
	}
	vals, err := tk.floats(name, nnz)
	if err != nil {
		return parsed{}, err
	}

	coords := make([]index.Coord, 0, len(ja))
	for i := 0; i < rows; i++ {
		for k := ptr[i] - 1; k < ptr[i+1]-1; k++ {
			j := ja[k]
			if j < 1 || j > cols {
				return parsed{}, parseErrorf(name, tk.ls.line, "column index %d outside 1..%d", j, cols)
			}
			coords = append(coords, index.NewCoord(uint(i), uint(j-1), vals[k]))
		}
	}

	return parsed{size: index.NewPair(uint(rows), uint(cols)), coords: coords}, nil
}
