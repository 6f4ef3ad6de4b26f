// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NewIdentity returns the n×n identity matrix.
// Errors: ErrBadShape when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Product multiplies two matrices given as nested slices (one inner slice per
// row) and returns the rows(m1) × cols(m2) result in the same form.
//
// The inputs are copied, never retained or mutated.
//
// Errors:
//   - ErrBadShape / ErrNonRectangular when an operand is empty or ragged.
//   - ErrDimensionMismatch when len(m1[0]) != len(m2).
//
// Example:
//
//	p, _ := Product([][]float64{{1, 2, 3}}, [][]float64{{4}, {5}, {6}})
//	// p == [][]float64{{32}}
func Product(m1, m2 [][]float64) ([][]float64, error) {
	a, err := NewFromRows(m1)
	if err != nil {
		return nil, fmt.Errorf("%s: left operand: %w", opProduct, err)
	}
	b, err := NewFromRows(m2)
	if err != nil {
		return nil, fmt.Errorf("%s: right operand: %w", opProduct, err)
	}
	c, err := Mul(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProduct, err)
	}

	return c.ToRows(), nil
}
