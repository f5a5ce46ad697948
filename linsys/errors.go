// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.
// All operations return these sentinels (possibly wrapped) and tests match
// them via errors.Is. Native status codes travel in *StatusError, which
// unwraps to ErrInvalidArgument or ErrSingular.

package linsys

import (
	"errors"
	"fmt"
)

var (
	// ErrNonSquare signals that the coefficient matrix is not square.
	ErrNonSquare = errors.New("linsys: matrix is not square")

	// ErrDimensionMismatch signals incompatible shapes among A, b and x,
	// or value lists of the wrong length.
	ErrDimensionMismatch = errors.New("linsys: dimension mismatch")

	// ErrInvalidArgument signals a negative native status: the routine
	// rejected one of its arguments.
	ErrInvalidArgument = errors.New("linsys: invalid argument to native routine")

	// ErrSingular signals a positive native status: an exactly-zero pivot.
	ErrSingular = errors.New("linsys: singular matrix")

	// ErrUnsupportedPrecision signals an element type with no native routine.
	ErrUnsupportedPrecision = errors.New("linsys: unsupported precision")

	// ErrInvalidSize signals negative dimensions.
	ErrInvalidSize = errors.New("linsys: invalid size")

	// ErrNotSized signals value initialization before the system was sized.
	ErrNotSized = errors.New("linsys: system is not sized")

	// ErrNotPopulated signals a solve without fresh A and b.
	ErrNotPopulated = errors.New("linsys: system is not populated")

	// ErrNilMatrix signals a nil coefficient matrix.
	ErrNilMatrix = errors.New("linsys: nil matrix")
)

// StatusError carries a non-zero status returned by a native routine.
type StatusError struct {
	Routine string
	Status  int
}

// Error implements error.
func (e *StatusError) Error() string {
	switch {
	case e.Status < 0:
		return fmt.Sprintf("linsys: %s: argument %d had an illegal value", e.Routine, -e.Status)
	case e.Status > 0:
		return fmt.Sprintf("linsys: %s: U(%d,%d) is exactly zero, no solution computed", e.Routine, e.Status, e.Status)
	}

	return fmt.Sprintf("linsys: %s: status 0", e.Routine)
}

// Unwrap maps the status onto ErrInvalidArgument or ErrSingular.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Status < 0:
		return ErrInvalidArgument
	case e.Status > 0:
		return ErrSingular
	}

	return nil
}

// Argument returns the 1-based position of the rejected argument, or 0.
func (e *StatusError) Argument() int {
	if e.Status < 0 {
		return -e.Status
	}

	return 0
}

// Pivot returns the 1-based position of the zero pivot, or 0.
func (e *StatusError) Pivot() int {
	if e.Status > 0 {
		return e.Status
	}

	return 0
}

// linsysErrorf wraps err with an operation tag.
func linsysErrorf(op string, err error) error {
	return fmt.Errorf("linsys: %s: %w", op, err)
}
