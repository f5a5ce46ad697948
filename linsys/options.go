// SPDX-License-Identifier: MIT

package linsys

import (
	"log/slog"

	"github.com/katalvlaran/lss/format"
)

// Options configures a System.
type Options struct {
	Logger *slog.Logger
	Read   []format.Option
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger; it is also handed to the file readers.
// A nil logger keeps the default, which discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReadOptions forwards options to format.ReadDense in InitializeFiles.
func WithReadOptions(opts ...format.Option) Option {
	return func(o *Options) { o.Read = append(o.Read, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
