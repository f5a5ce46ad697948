// SPDX-License-Identifier: MIT

// Package numeric declares the closed sets of element types the module works
// with and the single conversion policy from float64 (the reading precision)
// into any of them.
//
// Conversion policy (Convert):
//   - float64 → float64: identity.
//   - float64 → float32: rounding to nearest; precision loss is accepted.
//   - float64 → integer: truncation toward zero; NaN becomes 0; values outside
//     the target range saturate at the type bounds.
package numeric

import "math"

// Float is the set of element types with a native solver binding.
type Float interface {
	float32 | float64
}

// Number is the set of element types a matrix may be read into.
// The set is closed (no ~ approximations) so Convert can dispatch on it.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Precision names the floating-point width of an element type.
type Precision int

const (
	// PrecisionUnsupported marks element types without a native solver binding.
	PrecisionUnsupported Precision = iota
	// Single is float32.
	Single
	// Double is float64.
	Double
)

// String implements fmt.Stringer.
func (p Precision) String() string {
	switch p {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return "unsupported"
	}
}

// PrecisionOf reports the precision of T.
func PrecisionOf[T Number]() Precision {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Single
	case float64:
		return Double
	default:
		return PrecisionUnsupported
	}
}

// Convert maps v into T following the package conversion policy.
func Convert[T Number](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float64, float32:
		return T(v)
	case int:
		return any(saturate[int](v, math.MinInt, math.MaxInt)).(T)
	case int8:
		return any(saturate[int8](v, math.MinInt8, math.MaxInt8)).(T)
	case int16:
		return any(saturate[int16](v, math.MinInt16, math.MaxInt16)).(T)
	case int32:
		return any(saturate[int32](v, math.MinInt32, math.MaxInt32)).(T)
	case int64:
		return any(saturate[int64](v, math.MinInt64, math.MaxInt64)).(T)
	case uint:
		return any(saturate[uint](v, 0, math.MaxUint)).(T)
	case uint8:
		return any(saturate[uint8](v, 0, math.MaxUint8)).(T)
	case uint16:
		return any(saturate[uint16](v, 0, math.MaxUint16)).(T)
	case uint32:
		return any(saturate[uint32](v, 0, math.MaxUint32)).(T)
	default: // uint64
		return any(saturate[uint64](v, 0, math.MaxUint64)).(T)
	}
}

// saturate truncates v toward zero and clamps it into [lo, hi].
// float64(hi) may round up (e.g. 2^63 for MaxInt64); the >= test keeps the
// final conversion in range.
func saturate[I Number](v float64, lo, hi I) I {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Trunc(v)
	if v <= float64(lo) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}

	return I(v)
}

// ConvertSlice converts every element of src with Convert.
func ConvertSlice[T Number](src []float64) []T {
	out := make([]T, len(src))
	for k, v := range src {
		out[k] = Convert[T](v)
	}

	return out
}
