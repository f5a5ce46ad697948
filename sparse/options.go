// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lss/format"
	"github.com/katalvlaran/lss/source"
)

const (
	// DefaultIndexBase stores 0-based pointers and indices.
	DefaultIndexBase = 0
	// DefaultColumnOriented selects compressed-row storage.
	DefaultColumnOriented = false
	// DefaultDiagonalFirst keeps every index vector strictly ascending.
	DefaultDiagonalFirst = false
)

// Options configures Build and FromFile.
type Options struct {
	ColumnOriented bool
	DiagonalFirst  bool
	Base           int
	Read           []format.Option
}

// Option mutates Options.
type Option func(*Options)

// WithColumnOriented compresses by column (CSC) instead of by row (CSR).
func WithColumnOriented() Option {
	return func(o *Options) { o.ColumnOriented = true }
}

// WithDiagonalFirst stores the diagonal entry first in every index vector,
// inserting an explicit zero where the input has none.
func WithDiagonalFirst() Option {
	return func(o *Options) { o.DiagonalFirst = true }
}

// WithIndexBase sets the base of the emitted pointers and indices.
// Panics unless base is 0 or 1.
func WithIndexBase(base int) Option {
	if base != 0 && base != 1 {
		panic(fmt.Sprintf("sparse: WithIndexBase(%d): base must be 0 or 1", base))
	}

	return func(o *Options) { o.Base = base }
}

// WithSource makes FromFile read through src.
func WithSource(src source.Source) Option {
	opt := format.WithSource(src)

	return func(o *Options) { o.Read = append(o.Read, opt) }
}

// WithReadOptions forwards options to the format reader used by FromFile.
func WithReadOptions(opts ...format.Option) Option {
	return func(o *Options) { o.Read = append(o.Read, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		ColumnOriented: DefaultColumnOriented,
		DiagonalFirst:  DefaultDiagonalFirst,
		Base:           DefaultIndexBase,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
