// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/katalvlaran/lss/numeric"
	"github.com/katalvlaran/lss/source"
)

var readers = map[string]Reader{
	".mtx": MatrixMarket{},
	".rua": HarwellBoeing{},
	".csr": CSR{},
}

// Extensions lists the recognized filename extensions, sorted.
func Extensions() []string {
	out := make([]string, 0, len(readers))
	for ext := range readers {
		out = append(out, ext)
	}
	slices.Sort(out)

	return out
}

// Detect returns the backend for name's extension (case-sensitive).
func Detect(name string) (Reader, error) {
	if r, ok := readers[filepath.Ext(name)]; ok {
		return r, nil
	}

	return nil, fmt.Errorf("%w (%q)", ErrFormatNotDetected, name)
}

// ReadDense reads the named file into a dense grid of T.
func ReadDense[T numeric.Number](name string, rowOriented bool, opts ...Option) (DenseData[T], error) {
	o := gatherOptions(opts...)
	rd, err := Detect(name)
	if err != nil {
		return DenseData[T]{}, err
	}
	rc, err := source.Open(o.Ctx, o.Source, name)
	if err != nil {
		return DenseData[T]{}, err
	}
	defer rc.Close()

	start := time.Now()
	d, err := rd.ReadDense(rc, rowOriented)
	if err != nil {
		o.Logger.Error("format: read failed", "file", name, "reader", rd.Name(), "err", err)

		return DenseData[T]{}, fmt.Errorf("format: %s: %w", name, err)
	}
	o.Logger.Debug("format: read dense", "file", name, "reader", rd.Name(), "size", d.Size.String(), "elapsed", time.Since(start))

	return convertDense[T](d), nil
}

// ReadDenseReader parses r with the backend registered for ext (e.g. ".mtx").
func ReadDenseReader[T numeric.Number](r io.Reader, ext string, rowOriented bool) (DenseData[T], error) {
	rd, err := Detect(ext)
	if err != nil {
		return DenseData[T]{}, err
	}
	d, err := rd.ReadDense(r, rowOriented)
	if err != nil {
		return DenseData[T]{}, err
	}

	return convertDense[T](d), nil
}

// ReadSparse reads the named file into coordinate arrays of T in the given
// index base (0 or 1).
func ReadSparse[T numeric.Number](name string, rowOriented bool, base int, opts ...Option) (SparseData[T], error) {
	o := gatherOptions(opts...)
	rd, err := Detect(name)
	if err != nil {
		return SparseData[T]{}, err
	}
	rc, err := source.Open(o.Ctx, o.Source, name)
	if err != nil {
		return SparseData[T]{}, err
	}
	defer rc.Close()

	start := time.Now()
	s, err := rd.ReadSparse(rc, rowOriented, base)
	if err != nil {
		o.Logger.Error("format: read failed", "file", name, "reader", rd.Name(), "err", err)

		return SparseData[T]{}, fmt.Errorf("format: %s: %w", name, err)
	}
	o.Logger.Debug("format: read sparse", "file", name, "reader", rd.Name(),
		slog.Int("nnz", s.Len()), "size", s.Size.String(), "elapsed", time.Since(start))

	return convertSparse[T](s), nil
}

// ReadSparseReader parses r with the backend registered for ext.
func ReadSparseReader[T numeric.Number](r io.Reader, ext string, rowOriented bool, base int) (SparseData[T], error) {
	rd, err := Detect(ext)
	if err != nil {
		return SparseData[T]{}, err
	}
	s, err := rd.ReadSparse(r, rowOriented, base)
	if err != nil {
		return SparseData[T]{}, err
	}

	return convertSparse[T](s), nil
}

func convertDense[T numeric.Number](d DenseData[float64]) DenseData[T] {
	if same, ok := any(d).(DenseData[T]); ok {
		return same
	}
	grid := make([][]T, len(d.Grid))
	for k, row := range d.Grid {
		grid[k] = numeric.ConvertSlice[T](row)
	}

	return DenseData[T]{Size: d.Size, RowOriented: d.RowOriented, Grid: grid}
}

func convertSparse[T numeric.Number](s SparseData[float64]) SparseData[T] {
	if same, ok := any(s).(SparseData[T]); ok {
		return same
	}

	return SparseData[T]{
		Size:        s.Size,
		RowOriented: s.RowOriented,
		Base:        s.Base,
		Values:      numeric.ConvertSlice[T](s.Values),
		Rows:        s.Rows,
		Cols:        s.Cols,
	}
}
