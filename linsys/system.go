// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lss/dense"
	"github.com/katalvlaran/lss/format"
	"github.com/katalvlaran/lss/numeric"
)

// State is the lifecycle stage of a System.
type State int

const (
	// StateEmpty: nothing sized yet.
	StateEmpty State = iota
	// StateSized: buffers shaped, contents are fill values.
	StateSized
	// StatePopulated: A and b hold data; Solve may run.
	StatePopulated
	// StateSolved: x holds the solution and b is empty.
	StateSolved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSized:
		return "sized"
	case StatePopulated:
		return "populated"
	case StateSolved:
		return "solved"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// System is a linear system A·x = b over a Storage.
// It is not safe for concurrent use.
type System[T numeric.Float] struct {
	storage Storage[T]
	state   State
	opts    Options
}

// New wraps storage; a nil storage selects NewLAPACK[T].
func New[T numeric.Float](storage Storage[T], opts ...Option) *System[T] {
	if storage == nil {
		storage = NewLAPACK[T]()
	}

	return &System[T]{storage: storage, opts: gatherOptions(opts...)}
}

// State returns the lifecycle stage.
func (s *System[T]) State() State { return s.state }

// A returns the coefficient matrix.
func (s *System[T]) A() *dense.Matrix[T] { return s.storage.A() }

// B returns the right-hand sides.
func (s *System[T]) B() *dense.Matrix[T] { return s.storage.B() }

// X returns the solution block.
func (s *System[T]) X() *dense.Matrix[T] { return s.storage.X() }

// Size reports DimRows, DimCols or DimRHS.
func (s *System[T]) Size(d int) int { return s.storage.Size(d) }

// Resize shapes the system and fills every block with value.
func (s *System[T]) Resize(rows, cols, nrhs int, value T) error {
	if err := s.storage.Resize(rows, cols, nrhs, value); err != nil {
		return err
	}
	s.state = StateSized
	s.opts.Logger.Debug("linsys: resized", "rows", rows, "cols", cols, "nrhs", nrhs)

	return nil
}

// InitializeFiles reads A (required), b and x (optional, "" for none) with
// format.ReadDense. Missing blocks are zero-filled with the derived shape.
func (s *System[T]) InitializeFiles(aName, bName, xName string) error {
	a, err := s.readFile(aName)
	if err != nil {
		return err
	}
	var b, x *dense.Matrix[T]
	if bName != "" {
		if b, err = s.readFile(bName); err != nil {
			return err
		}
	}
	if xName != "" {
		if x, err = s.readFile(xName); err != nil {
			return err
		}
	}
	if err = s.storage.Assign(a, b, x); err != nil {
		return err
	}
	s.state = StatePopulated
	s.opts.Logger.Debug("linsys: initialized from files", "a", aName, "b", bName, "x", xName,
		"rows", s.Size(DimRows), "cols", s.Size(DimCols), "nrhs", s.Size(DimRHS))

	return nil
}

func (s *System[T]) readFile(name string) (*dense.Matrix[T], error) {
	opts := append([]format.Option{format.WithLogger(s.opts.Logger)}, s.opts.Read...)
	d, err := format.ReadDense[T](name, false, opts...)
	if err != nil {
		return nil, err
	}

	return dense.FromGrid(d.Grid, d.RowOriented, dense.ColumnMajor)
}

// InitializeValues fills the sized blocks from value lists in logical
// row-major order. An empty list leaves its block untouched, a single value
// is broadcast, any other length must equal the block's element count.
// Nothing is modified when any list has the wrong length. A solved system
// has consumed b and must be resized first.
func (s *System[T]) InitializeValues(vA, vb, vx []T) error {
	if s.state == StateEmpty || s.state == StateSolved {
		return linsysErrorf(fmt.Sprintf("InitializeValues in state %s", s.state), ErrNotSized)
	}
	blocks := []struct {
		name string
		m    *dense.Matrix[T]
		v    []T
	}{{"A", s.A(), vA}, {"b", s.B(), vb}, {"x", s.X(), vx}}
	for _, blk := range blocks {
		r, c := blk.m.Shape()
		if n := len(blk.v); n > 1 && n != r*c {
			return linsysErrorf(fmt.Sprintf("InitializeValues: %d values for %s (%dx%d)", n, blk.name, r, c), ErrDimensionMismatch)
		}
	}
	for _, blk := range blocks {
		if err := blk.m.Assign(blk.v); err != nil {
			return err
		}
	}
	s.state = StatePopulated

	return nil
}

// Solve requires a populated system. On success x holds the solution, b is
// empty and the state is StateSolved; on failure the state is unchanged.
func (s *System[T]) Solve() error {
	if s.state != StatePopulated {
		return linsysErrorf(fmt.Sprintf("Solve in state %s", s.state), ErrNotPopulated)
	}

	start := time.Now()
	if err := s.storage.Solve(); err != nil {
		attrs := []any{"err", err, "rows", s.Size(DimRows), "cols", s.Size(DimCols)}
		var se *StatusError
		if errors.As(err, &se) {
			attrs = append(attrs, slog.String("routine", se.Routine), slog.Int("status", se.Status))
		}
		s.opts.Logger.Error("linsys: solve failed", attrs...)

		return err
	}
	s.state = StateSolved
	s.opts.Logger.Debug("linsys: solved", "precision", numeric.PrecisionOf[T]().String(),
		"n", s.Size(DimRows), "nrhs", s.Size(DimRHS), "elapsed", time.Since(start))

	return nil
}
