// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdrills/matrix"
)

// ExampleProduct multiplies a row vector by a column vector.
//
// Scenario:
//
//	              [[4],
//	[[1, 2, 3]] ×  [5],  = [[32]]
//	               [6]]
//
// Complexity: O(r·n·c) time, O(r·c) memory.
func ExampleProduct() {
	p, err := matrix.Product([][]float64{{1, 2, 3}}, [][]float64{{4}, {5}, {6}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// [[32]]
}

// ExampleMul shows the identity leaves the right operand unchanged.
func ExampleMul() {
	id, _ := matrix.NewIdentity(3)
	m, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	c, err := matrix.Mul(id, m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(c)
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
	// [7, 8, 9]
}

// ExampleProduct_mismatch shows how non-conformable operands are reported.
func ExampleProduct_mismatch() {
	_, err := matrix.Product([][]float64{{1, 2}}, [][]float64{{1, 2}})
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// true
}
