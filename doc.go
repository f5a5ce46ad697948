// SPDX-License-Identifier: MIT

// Package lss stores dense linear systems A·x = b, reads their blocks from
// matrix files and solves them with LU factorization and partial pivoting.
//
// Packages:
//
//	index/   index pairs, coordinate entries, index-vector pipelines
//	numeric/ element type sets and the float64 → T conversion policy
//	source/  local, S3 and MinIO byte sources with transparent decompression
//	format/  MatrixMarket (.mtx), Harwell-Boeing (.rua) and CSR (.csr) readers
//	dense/   row- or column-major dense matrices
//	sparse/  CSR/CSC assembly from coordinates
//	native/  Dgesv/Sgesv with the LAPACK calling convention
//	linsys/  system storage, solve adapter and lifecycle
//
// Quick start:
//
//	s := linsys.New[float64](nil)
//	if err := s.InitializeFiles("A.mtx", "b.mtx", ""); err != nil { ... }
//	if err := s.Solve(); err != nil { ... }
//	x := s.X()
package lss
