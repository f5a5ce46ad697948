// SPDX-License-Identifier: MIT

package source

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic prefixes of the supported compressed encodings.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Decompress returns a reader over the decoded content of rc.
// Uncompressed input is passed through unchanged. Closing the result closes rc.
func Decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	// Short inputs are fine: Peek returns what is available.
	head, err := br.Peek(len(magicZstd))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}

		return &stack{Reader: zr, closers: []io.Closer{zr, rc}}, nil
	case bytes.HasPrefix(head, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		zrc := zr.IOReadCloser()

		return &stack{Reader: zrc, closers: []io.Closer{zrc, rc}}, nil
	case bytes.HasPrefix(head, magicLZ4):
		return &stack{Reader: lz4.NewReader(br), closers: []io.Closer{rc}}, nil
	default:
		return &stack{Reader: br, closers: []io.Closer{rc}}, nil
	}
}

// stack is a reader whose Close releases every layer, innermost last.
type stack struct {
	io.Reader
	closers []io.Closer
}

func (s *stack) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
