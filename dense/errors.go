// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// Every message is prefixed with "dense: ..." so that logs stay greppable.
// Callers match these with errors.Is; methods wrap them with denseErrorf to
// attach the failing call and coordinates.

package dense

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates negative rows or columns.
	ErrInvalidDimensions = errors.New("dense: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column outside the matrix bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes or value counts.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("dense: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxNew    = "New"
	ctxResize = "Resize"
	ctxAssign = "Assign"
	ctxGrid   = "FromGrid"
)

// denseErrorf wraps err with the method tag and the coordinates involved.
// For shape errors the coordinates are the requested rows and columns.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
