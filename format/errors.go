// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrFormatNotDetected is returned when a filename extension matches no backend.
	ErrFormatNotDetected = errors.New("format: file format not detected")

	// ErrParse is returned when a backend cannot parse its input.
	ErrParse = errors.New("format: cannot parse input")
)

// parseErrorf wraps ErrParse with the backend name and the offending line.
func parseErrorf(backend string, line int, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", backend, line, fmt.Sprintf(format, args...), ErrParse)
}
