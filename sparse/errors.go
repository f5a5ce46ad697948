// SPDX-License-Identifier: MIT

package sparse

import "errors"

var (
	// ErrInvalidSize is returned for a zero or unbounded matrix size.
	ErrInvalidSize = errors.New("sparse: invalid size")

	// ErrNonSquare is returned when diagonal-first layout is requested for a non-square size.
	ErrNonSquare = errors.New("sparse: diagonal-first layout requires a square size")

	// ErrOutOfRange is returned for a coordinate outside the matrix size.
	ErrOutOfRange = errors.New("sparse: coordinate out of range")
)
