// SPDX-License-Identifier: MIT

// Package tictactoe evaluates 3×3 tic-tac-toe positions.
//
// A position is a Board of Marks (X, O or Empty). Evaluate reports the mark
// that owns a complete line (row, column or diagonal), or Empty when no line
// is fully owned by one mark.
//
// The eight lines are scanned in a fixed order: rows 0..2, columns 0..2,
// the main diagonal, then the anti-diagonal. X is checked across all eight
// lines before O. Boards are not checked for legality: on a contradictory
// board (e.g. both marks own a line) the result is whatever that scan order
// finds first, which is always X.
//
//	X . 0
//	. X 0   → X (main diagonal)
//	. . X
//
// ParseBoard builds a Board from three row strings, which keeps tests and
// examples close to the pictures above.
package tictactoe
