// SPDX-License-Identifier: MIT

package tictactoe

import "strings"

// Size is the board edge length.
const Size = 3

// Mark is the tri-state content of a cell.
type Mark uint8

const (
	// Empty is an unoccupied cell; as an Evaluate result it means "no winner".
	Empty Mark = iota
	// X is the first player's mark.
	X
	// O is the second player's mark, written "0".
	O
)

// String renders X as "X", O as "0" and Empty as "".
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "0"
	default:
		return ""
	}
}

// Board is a 3×3 position indexed [row][col].
type Board [Size][Size]Mark

// String renders the board as three newline-separated rows, '.' for Empty.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b[r][c].String())
			}
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Cell addresses one square of the board.
type Cell struct {
	Row, Col int
}

// Line is three cells that win when owned by a single mark.
type Line [Size]Cell

// lines holds the 8 winning lines in scan order.
var lines = [...]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Lines returns a copy of the 8 winning lines in scan order:
// rows 0..2, columns 0..2, main diagonal, anti-diagonal.
func Lines() []Line {
	out := make([]Line, len(lines))
	copy(out, lines[:])

	return out
}
