// SPDX-License-Identifier: MIT

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a named object does not exist.
// It aliases os.ErrNotExist so filesystem errors match it too.
var ErrNotFound = os.ErrNotExist

// Source opens named byte streams for reading.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Local opens files from the local filesystem.
// Relative names are resolved against Root when Root is non-empty.
type Local struct {
	Root string
}

// NewLocal returns a Local source rooted at root ("" means the working directory).
func NewLocal(root string) Local { return Local{Root: root} }

// Open opens name for reading.
func (l Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := name
	if l.Root != "" && !filepath.IsAbs(name) {
		path = filepath.Join(l.Root, name)
	}

	return os.Open(path)
}

// Open opens name from src and decodes compressed payloads.
func Open(ctx context.Context, src Source, name string) (io.ReadCloser, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("source: open %q: %w", name, err)
	}
	dc, err := Decompress(rc)
	if err != nil {
		_ = rc.Close()

		return nil, fmt.Errorf("source: decode %q: %w", name, err)
	}

	return dc, nil
}
