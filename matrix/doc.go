// SPDX-License-Identifier: MIT

// Package matrix multiplies rectangular matrices of float64 values.
//
// What & Why:
//
//	Matrices arrive as plain nested slices ([][]float64, one inner slice per
//	row). They are ingested into a row-major Dense buffer, validated for
//	conformability (columns of the left operand == rows of the right operand)
//	and multiplied with the standard sum-of-products definition:
//
//	  C[i][j] = Σₖ A[i][k] · B[k][j],   C has shape rows(A) × cols(B)
//
// Example:
//
//	[[1, 2, 3]] × [[4], [5], [6]] = [[32]]
//
// Errors:
//
//	Every failure is a package sentinel (ErrBadShape, ErrNonRectangular,
//	ErrDimensionMismatch, ErrOutOfRange, ErrNilMatrix) wrapped with the
//	operation tag; match with errors.Is. No exported function panics on
//	user input.
//
// Complexity:
//
//	NewFromRows, ToRows: O(r·c).
//	Mul, Product:        O(r·n·c) time, O(r·c) memory for the result.
//
// All functions are pure: operands are never mutated, so concurrent callers
// need no coordination.
package matrix
