// SPDX-License-Identifier: MIT

// Package index provides the positional primitives used to assemble linear
// systems: the (row, col) Pair, coordinate entries with their orderings and
// predicates, and composable transformations over index vectors.
//
// Pair is a plain value type. Its zero value is (0,0), which is a valid
// position but not a valid size; Invalid returns the unbounded sentinel.
//
// Index vectors (row or column lists of a sparsity pattern) are built with
// pipelines: ordered lists of elementary transformations applied first to
// last. Two pipelines are predefined:
//
//	Sorted              = PushBack, SortUnique
//	SortedDiagonalFirst = Remove, SortUnique, PushFront
//
// New pipelines are composed from the same elementary operations.
package index
