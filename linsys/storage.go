// SPDX-License-Identifier: MIT

package linsys

import (
	"github.com/katalvlaran/lss/dense"
	"github.com/katalvlaran/lss/numeric"
)

// Dimensions accepted by Storage.Size.
const (
	DimRows = iota
	DimCols
	DimRHS
)

// Storage owns the A, b and x blocks of a linear system and solves it.
type Storage[T numeric.Float] interface {
	// Resize shapes A as rows×cols, b as rows×nrhs and x as cols×nrhs,
	// every element set to value.
	Resize(rows, cols, nrhs int, value T) error
	// Assign takes a, b and x as the system contents. b and x may be nil,
	// in which case zero blocks of the derived shape are used.
	Assign(a, b, x *dense.Matrix[T]) error
	// Size reports DimRows, DimCols or DimRHS; other dimensions report 0.
	Size(d int) int
	// Solve computes x from A and b.
	Solve() error

	A() *dense.Matrix[T]
	B() *dense.Matrix[T]
	X() *dense.Matrix[T]
}
