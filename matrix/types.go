// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read-only surface Mul needs from an operand.
// *Dense implements it; other implementations take the generic At path.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Operation tags used to prefix wrapped errors.
const (
	opNewDense    = "NewDense"
	opNewFromRows = "NewFromRows"
	opIdentity    = "NewIdentity"
	opMul         = "Mul"
	opProduct     = "Product"
)
