// SPDX-License-Identifier: MIT

// Package format reads matrix data from the three supported on-disk layouts
// and hands it out as dense grids or sparse coordinate arrays.
//
// Backends (each a Reader):
//   - MatrixMarket  (".mtx") coordinate and array storage, real/integer/pattern,
//     general/symmetric/skew-symmetric.
//   - HarwellBoeing (".rua") fixed-header, column-compressed Fortran layout.
//   - CSR           (".csr") MatrixMarket-style comments, then
//     "rows cols nnz", rows+1 row pointers, nnz column indices and nnz values
//     (all indices 1-based).
//
// Backends always read in float64. ReadDense and ReadSparse pick the backend
// from the filename extension (case-sensitive), open the file through a
// source.Source and convert the result element-wise into the caller's type
// with numeric.Convert. When the target type is float64 the backend buffers
// are returned without a copy.
//
// Errors:
//   - ErrFormatNotDetected: unknown extension; no backend or source is touched.
//   - ErrParse: the backend could not parse its input.
package format
