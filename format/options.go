// SPDX-License-Identifier: MIT

package format

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lss/source"
)

// Options configures ReadDense and ReadSparse.
type Options struct {
	Source source.Source
	Logger *slog.Logger
	Ctx    context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions reads from the local filesystem with logging discarded.
func DefaultOptions() Options {
	return Options{
		Source: source.NewLocal(""),
		Logger: slog.New(slog.DiscardHandler),
		Ctx:    context.Background(),
	}
}

// WithSource reads through src. Panics on nil.
func WithSource(src source.Source) Option {
	if src == nil {
		panic("format: WithSource(nil)")
	}

	return func(o *Options) { o.Source = src }
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext bounds the open of the underlying stream. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("format: WithContext(nil)")
	}

	return func(o *Options) { o.Ctx = ctx }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
