// SPDX-License-Identifier: MIT

// Package linsys holds dense linear systems A·x = b and solves them with the
// native xGESV routines.
//
// A System moves through four states:
//
//	Empty --Resize--> Sized --InitializeValues--> Populated --Solve--> Solved
//	                         InitializeFiles (any state) ------^
//	Solved --Resize--> Sized
//
// Solve needs a square A (ErrNonSquare otherwise, checked before any native
// call). Native status codes come back as *StatusError: negative codes
// unwrap to ErrInvalidArgument and name the argument, positive codes unwrap
// to ErrSingular and name the zero pivot. After a successful solve b is
// empty, so solving again requires new right-hand sides: InitializeValues
// on a Solved system fails with ErrNotSized until Resize.
package linsys
