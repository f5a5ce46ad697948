// SPDX-License-Identifier: MIT

package index

import "slices"

// Integer is the set of index element types a transformation may operate on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Transform is one elementary operation on an index vector.
// pivot is the distinguished index; operations that do not need it ignore it.
// The returned slice may share v's backing array.
type Transform[I Integer] func(v []I, pivot I) []I

// Pipeline is an ordered list of transformations, applied first to last.
type Pipeline[I Integer] []Transform[I]

// Apply runs every step of p over v with the same pivot.
func (p Pipeline[I]) Apply(v []I, pivot I) []I {
	for _, step := range p {
		v = step(v, pivot)
	}

	return v
}

// Then returns a new pipeline with steps appended after p's.
func (p Pipeline[I]) Then(steps ...Transform[I]) Pipeline[I] {
	out := make(Pipeline[I], 0, len(p)+len(steps))
	out = append(out, p...)

	return append(out, steps...)
}

// SortUnique sorts v ascending and drops duplicates in place.
func SortUnique[I Integer](v []I, _ I) []I {
	slices.Sort(v)

	return slices.Compact(v)
}

// PushFront inserts pivot at position 0, unconditionally.
func PushFront[I Integer](v []I, pivot I) []I {
	return slices.Insert(v, 0, pivot)
}

// PushBack appends pivot, unconditionally.
func PushBack[I Integer](v []I, pivot I) []I {
	return append(v, pivot)
}

// Remove deletes every occurrence of pivot.
func Remove[I Integer](v []I, pivot I) []I {
	return slices.DeleteFunc(v, func(e I) bool { return e == pivot })
}

// OffsetShift returns a transformation adding delta to every element,
// e.g. OffsetShift[int](1) converts 0-based indices to 1-based.
func OffsetShift[I Integer](delta int) Transform[I] {
	return func(v []I, _ I) []I {
		for k := range v {
			v[k] = I(int(v[k]) + delta)
		}

		return v
	}
}

// Sorted inserts the pivot into a sorted, duplicate-free vector.
// Applying it repeatedly is idempotent per pivot.
func Sorted[I Integer]() Pipeline[I] {
	return Pipeline[I]{PushBack[I], SortUnique[I]}
}

// SortedDiagonalFirst places the pivot (typically the diagonal index) at
// position 0 exactly once and keeps the remainder sorted and duplicate-free.
func SortedDiagonalFirst[I Integer]() Pipeline[I] {
	return Pipeline[I]{Remove[I], SortUnique[I], PushFront[I]}
}
