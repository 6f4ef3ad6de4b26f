// SPDX-License-Identifier: MIT

package tictactoe

import "fmt"

// candidates is the order in which marks are tried.
var candidates = [...]Mark{X, O}

// owns reports whether every cell of l holds m.
func (b *Board) owns(l Line, m Mark) bool {
	for _, c := range l {
		if b[c.Row][c.Col] != m {
			return false
		}
	}

	return true
}

// WinningLine returns the first line fully owned by a single mark, trying X
// on all 8 lines before O. ok is false when no line is owned.
func WinningLine(b Board) (line Line, winner Mark, ok bool) {
	for _, m := range candidates {
		for _, l := range lines {
			if b.owns(l, m) {
				return l, m, true
			}
		}
	}

	return Line{}, Empty, false
}

// Evaluate returns the winning mark of b, or Empty if there is none.
// See WinningLine for the scan order used on contradictory boards.
func Evaluate(b Board) Mark {
	_, m, _ := WinningLine(b)

	return m
}

// ParseBoard reads three rows of three cells each.
// 'X'/'x' is X; '0'/'O'/'o' is O; ' ', '.' and '_' are Empty.
func ParseBoard(rows [Size]string) (Board, error) {
	var b Board
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return Board{}, fmt.Errorf("row %d: got %d cells: %w", r, len(cells), ErrRowLength)
		}
		for c, ch := range cells {
			switch ch {
			case 'X', 'x':
				b[r][c] = X
			case '0', 'O', 'o':
				b[r][c] = O
			case ' ', '.', '_':
				b[r][c] = Empty
			default:
				return Board{}, fmt.Errorf("cell (%d,%d) %q: %w", r, c, ch, ErrBadCell)
			}
		}
	}

	return b, nil
}
