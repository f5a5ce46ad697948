// SPDX-License-Identifier: MIT

package format

// Test bridge for the Fortran edit-descriptor helpers.

// FortranFormat mirrors the decoded descriptor for assertions.
type FortranFormat struct {
	Repeat int
	Kind   byte
	Width  int
	Scale  int
}

// ExportedParseFortranFormat exposes parseFortranFormat.
func ExportedParseFortranFormat(s string) (FortranFormat, bool) {
	f, ok := parseFortranFormat(s)

	return FortranFormat{Repeat: f.repeat, Kind: f.kind, Width: f.width, Scale: f.scale}, ok
}

// ExportedFortranReal exposes fortranFormat.real for a descriptor string.
func ExportedFortranReal(descriptor, field string) (float64, error) {
	f, _ := parseFortranFormat(descriptor)

	return f.real(field)
}

// ExportedFortranFields exposes fortranFormat.fields.
func ExportedFortranFields(descriptor, line string) []string {
	f, _ := parseFortranFormat(descriptor)

	return f.fields(line)
}
