// SPDX-License-Identifier: MIT

package format

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/lss/index"
)

// HarwellBoeing reads assembled ".rua"-family files: a fixed header followed
// by column pointers, row indices and (unless pattern) values, all 1-based
// and column-compressed.
type HarwellBoeing struct{}

// Name implements Reader.
func (HarwellBoeing) Name() string { return "harwellboeing" }

// ReadDense implements Reader.
func (h HarwellBoeing) ReadDense(r io.Reader, rowOriented bool) (DenseData[float64], error) {
	p, err := h.parse(r)
	if err != nil {
		return DenseData[float64]{}, err
	}

	return p.dense(rowOriented)
}

// ReadSparse implements Reader.
func (h HarwellBoeing) ReadSparse(r io.Reader, rowOriented bool, base int) (SparseData[float64], error) {
	p, err := h.parse(r)
	if err != nil {
		return SparseData[float64]{}, err
	}

	return p.sparse(rowOriented, base)
}

// fortranFormat is a single repeated edit descriptor such as (10I8) or (1P4E20.12).
type fortranFormat struct {
	repeat int
	kind   byte // 'I', 'E', 'D', 'F' or 'G'
	width  int
	scale  int
}

var fortranRe = regexp.MustCompile(`(?i)^\(\s*(?:([-+]?\d+)\s*P\s*,?\s*)?(\d*)\s*([IEDFG])\s*(\d+)(?:\.\d+)?(?:E\d+)?\s*\)$`)

// parseFortranFormat decodes a descriptor; an empty string yields a
// free-form (whitespace separated) format.
func parseFortranFormat(s string) (fortranFormat, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fortranFormat{}, true
	}
	m := fortranRe.FindStringSubmatch(s)
	if m == nil {
		return fortranFormat{}, false
	}
	f := fortranFormat{repeat: 1, kind: strings.ToUpper(m[3])[0]}
	if m[1] != "" {
		f.scale, _ = strconv.Atoi(m[1])
	}
	if m[2] != "" {
		f.repeat, _ = strconv.Atoi(m[2])
	}
	f.width, _ = strconv.Atoi(m[4])
	if f.repeat < 1 || f.width < 1 {
		return fortranFormat{}, false
	}

	return f, true
}

// fields splits one card into its edit fields; free-form when width is 0.
func (f fortranFormat) fields(line string) []string {
	if f.width == 0 {
		return strings.Fields(line)
	}
	out := make([]string, 0, f.repeat)
	for k := 0; k < f.repeat; k++ {
		lo := k * f.width
		if lo >= len(line) {
			break
		}
		hi := min(lo+f.width, len(line))
		if s := strings.TrimSpace(line[lo:hi]); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// real converts a value field, honouring D exponents and the P scale factor
// for fields written without an exponent.
func (f fortranFormat) real(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, strings.TrimSpace(s))
	// Fortran may drop the exponent letter when the exponent needs three digits.
	if !strings.ContainsAny(s, "Ee") {
		if k := strings.LastIndexAny(s, "+-"); k > 0 {
			s = s[:k] + "E" + s[k:]
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f.scale != 0 && !strings.ContainsAny(s, "Ee") {
		v *= math.Pow10(-f.scale)
	}

	return v, nil
}

var hbFormatRe = regexp.MustCompile(`\([^)]*\)`)

type hbHeader struct {
	pattern bool
	sign    float64
	rows    int
	cols    int
	nnz     int
	ptr     fortranFormat
	ind     fortranFormat
	val     fortranFormat
}

func (h HarwellBoeing) parseHeader(ls *lineScanner) (hbHeader, error) {
	name := h.Name()
	var lines [4]string
	for k := range lines {
		l, ok := ls.next()
		if !ok {
			return hbHeader{}, parseErrorf(name, ls.line, "header truncated")
		}
		lines[k] = l
	}

	cards := strings.Fields(lines[1])
	if len(cards) < 4 {
		return hbHeader{}, parseErrorf(name, 2, "card counts %q", lines[1])
	}
	rhsCards := 0
	if len(cards) >= 5 {
		rhsCards, _ = strconv.Atoi(cards[4])
	}

	f := strings.Fields(lines[2])
	if len(f) < 4 || len(f[0]) != 3 {
		return hbHeader{}, parseErrorf(name, 3, "matrix type line %q", lines[2])
	}
	var hdr hbHeader
	mxtype := strings.ToUpper(f[0])
	switch mxtype[0] {
	case 'R':
	case 'P':
		hdr.pattern = true
	default:
		return hbHeader{}, parseErrorf(name, 3, "value type %q", mxtype[:1])
	}
	switch mxtype[1] {
	case 'U', 'R':
	case 'S':
		hdr.sign = 1
	case 'Z':
		hdr.sign = -1
	default:
		return hbHeader{}, parseErrorf(name, 3, "structure %q", mxtype[1:2])
	}
	if mxtype[2] != 'A' {
		return hbHeader{}, parseErrorf(name, 3, "only assembled matrices are read, got %q", mxtype)
	}
	dims := make([]int, 3)
	for k := range dims {
		v, err := strconv.Atoi(f[k+1])
		if err != nil {
			return hbHeader{}, parseErrorf(name, 3, "integer %q", f[k+1])
		}
		dims[k] = v
	}
	hdr.rows, hdr.cols, hdr.nnz = dims[0], dims[1], dims[2]
	if err := checkCounts(name, 3, hdr.rows, hdr.cols, hdr.nnz); err != nil {
		return hbHeader{}, err
	}
	if hdr.sign != 0 && hdr.rows != hdr.cols {
		return hbHeader{}, parseErrorf(name, 3, "symmetric storage of non-square %dx%d", hdr.rows, hdr.cols)
	}

	fmts := hbFormatRe.FindAllString(lines[3], -1)
	want := 3
	if hdr.pattern {
		want = 2
	}
	if len(fmts) < want {
		return hbHeader{}, parseErrorf(name, 4, "formats %q", lines[3])
	}
	dst := []*fortranFormat{&hdr.ptr, &hdr.ind, &hdr.val}
	for k := 0; k < want; k++ {
		ff, ok := parseFortranFormat(fmts[k])
		if !ok {
			return hbHeader{}, parseErrorf(name, 4, "format %q", fmts[k])
		}
		*dst[k] = ff
	}

	if rhsCards > 0 {
		if _, ok := ls.next(); !ok {
			return hbHeader{}, parseErrorf(name, ls.line, "right-hand side header missing")
		}
	}

	return hdr, nil
}

// section collects n fields laid out by f across consecutive cards.
func (h HarwellBoeing) section(ls *lineScanner, f fortranFormat, n int, what string) ([]string, error) {
	out := make([]string, 0, min(n, maxPrealloc))
	for len(out) < n {
		l, ok := ls.next()
		if !ok {
			if err := ls.err(); err != nil {
				return nil, parseErrorf(h.Name(), ls.line, "read: %v", err)
			}
			return nil, parseErrorf(h.Name(), ls.line, "unexpected end of input: %d of %d %s", len(out), n, what)
		}
		out = append(out, f.fields(l)...)
	}

	return out[:n], nil
}

func (h HarwellBoeing) parse(r io.Reader) (parsed, error) {
	name := h.Name()
	ls := newLineScanner(r)
	hdr, err := h.parseHeader(ls)
	if err != nil {
		return parsed{}, err
	}

	ptrTok, err := h.section(ls, hdr.ptr, hdr.cols+1, "column pointers")
	if err != nil {
		return parsed{}, err
	}
	ptr := make([]int, len(ptrTok))
	for k, s := range ptrTok {
		if ptr[k], err = strconv.Atoi(s); err != nil {
			return parsed{}, parseErrorf(name, ls.line, "column pointer %q", s)
		}
	}
	if ptr[0] != 1 || ptr[hdr.cols]-1 != hdr.nnz {
		return parsed{}, parseErrorf(name, ls.line, "column pointers span [%d,%d), want [1,%d)", ptr[0], ptr[hdr.cols], hdr.nnz+1)
	}
	for c := 0; c < hdr.cols; c++ {
		if ptr[c+1] < ptr[c] {
			return parsed{}, parseErrorf(name, ls.line, "column pointers decrease at column %d", c+1)
		}
	}

	indTok, err := h.section(ls, hdr.ind, hdr.nnz, "row indices")
	if err != nil {
		return parsed{}, err
	}
	vals := make([]float64, len(indTok))
	if hdr.pattern {
		for k := range vals {
			vals[k] = 1
		}
	} else {
		valTok, err := h.section(ls, hdr.val, hdr.nnz, "values")
		if err != nil {
			return parsed{}, err
		}
		for k, s := range valTok {
			if vals[k], err = hdr.val.real(s); err != nil {
				return parsed{}, parseErrorf(name, ls.line, "value %q", s)
			}
		}
	}

	coords := make([]index.Coord, 0, len(indTok))
	for c := 0; c < hdr.cols; c++ {
		for k := ptr[c] - 1; k < ptr[c+1]-1; k++ {
			i, err := strconv.Atoi(indTok[k])
			if err != nil {
				return parsed{}, parseErrorf(name, ls.line, "row index %q", indTok[k])
			}
			if i < 1 || i > hdr.rows {
				return parsed{}, parseErrorf(name, ls.line, "row index %d outside 1..%d", i, hdr.rows)
			}
			coords = expand(coords, index.NewCoord(uint(i-1), uint(c), vals[k]), hdr.sign)
		}
	}

	return parsed{size: index.NewPair(uint(hdr.rows), uint(hdr.cols)), coords: coords}, nil
}
