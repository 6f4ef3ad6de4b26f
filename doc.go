// SPDX-License-Identifier: MIT

// Package lvdrills is a set of small, independent algorithm drills, each a
// pure function from literal inputs to a literal output.
//
// 🚀 What is inside?
//
//	A zero-state, zero-I/O library, one package per drill family:
//		• brackets/  — balanced-bracket checking over (), [], {}, <>
//		• tictactoe/ — 3×3 position evaluation
//		• matrix/    — row-major Dense matrices and the matrix product
//		• numeric/   — FizzBuzz, factorial, range sum, digital root,
//		               digit reversal, radix strings, intervals, Luhn
//		• geometry/  — triangle inequality, rectangle overlap, point-in-circle
//		• text/      — rune-wise reversal, first non-repeating character
//		• paths/     — common directory of slash-separated paths
//
// ✨ Guarantees:
//
//   - No shared state: every function is safe for concurrent callers.
//   - No panics on user input where Go would otherwise panic: malformed
//     matrices and bad radixes come back as sentinel errors (errors.Is).
//   - Inputs are never mutated.
//
// Quick taste:
//
//	brackets.Balanced("{[(<{[]}>)]}")                       // true
//	numeric.Luhn("79927398713")                             // true
//	matrix.Product([][]float64{{1, 2, 3}},
//	               [][]float64{{4}, {5}, {6}})              // [[32]], nil
//
//	go get github.com/katalvlaran/lvdrills
package lvdrills
