// SPDX-License-Identifier: MIT

package format

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	maxLineBytes = 16 << 20

	// maxPrealloc bounds capacities derived from header counts; slices
	// grow past it only as input actually arrives.
	maxPrealloc = 1 << 16

	// maxDenseElements bounds rows*cols of a materialized dense grid.
	maxDenseElements = math.MaxInt32
)

// lineScanner yields lines and tracks the 1-based line number for diagnostics.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineScanner{sc: sc}
}

// next returns the next raw line (without the newline).
func (s *lineScanner) next() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	s.line++

	return strings.TrimRight(s.sc.Text(), "\r"), true
}

// nextData returns the next line that is neither blank nor a '%' comment.
func (s *lineScanner) nextData() (string, bool) {
	for {
		l, ok := s.next()
		if !ok {
			return "", false
		}
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, "%") {
			continue
		}

		return t, true
	}
}

func (s *lineScanner) err() error { return s.sc.Err() }

// tokens splits data lines into whitespace-separated fields on demand.
type tokens struct {
	ls      *lineScanner
	pending []string
}

func (t *tokens) next() (string, bool) {
	for len(t.pending) == 0 {
		l, ok := t.ls.nextData()
		if !ok {
			return "", false
		}
		t.pending = strings.Fields(l)
	}
	tok := t.pending[0]
	t.pending = t.pending[1:]

	return tok, true
}

// ints reads n integers.
func (t *tokens) ints(backend string, n int) ([]int, error) {
	out := make([]int, 0, min(max(n, 0), maxPrealloc))
	for k := 0; k < n; k++ {
		tok, ok := t.next()
		if !ok {
			return nil, t.eof(backend, "integer", k, n)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, parseErrorf(backend, t.ls.line, "integer %q", tok)
		}
		out = append(out, v)
	}

	return out, nil
}

// floats reads n reals.
func (t *tokens) floats(backend string, n int) ([]float64, error) {
	out := make([]float64, 0, min(max(n, 0), maxPrealloc))
	for k := 0; k < n; k++ {
		tok, ok := t.next()
		if !ok {
			return nil, t.eof(backend, "value", k, n)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, parseErrorf(backend, t.ls.line, "value %q", tok)
		}
		out = append(out, v)
	}

	return out, nil
}

func (t *tokens) eof(backend, what string, got, want int) error {
	if err := t.ls.err(); err != nil {
		return parseErrorf(backend, t.ls.line, "read: %v", err)
	}

	return parseErrorf(backend, t.ls.line, "unexpected end of input: %d of %d %ss", got, want, what)
}

// positiveDims validates a declared matrix size: both dimensions positive,
// rows+1 and cols+1 representable and rows*cols free of overflow.
func positiveDims(backend string, line, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return parseErrorf(backend, line, "invalid size %dx%d", rows, cols)
	}
	if rows == math.MaxInt || cols == math.MaxInt || rows > math.MaxInt/cols {
		return parseErrorf(backend, line, "size %dx%d overflows", rows, cols)
	}

	return nil
}

// checkCounts validates a declared size together with its entry count.
func checkCounts(backend string, line, rows, cols, nnz int) error {
	if err := positiveDims(backend, line, rows, cols); err != nil {
		return err
	}
	if nnz < 0 || nnz > rows*cols {
		return parseErrorf(backend, line, "entry count %d outside 0..%d", nnz, rows*cols)
	}

	return nil
}
