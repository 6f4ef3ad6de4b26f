// SPDX-License-Identifier: MIT

package tictactoe

import "errors"

var (
	// ErrRowLength indicates a board row that does not hold exactly 3 cells.
	ErrRowLength = errors.New("tictactoe: each row must have exactly 3 cells")
	// ErrBadCell indicates a cell character that is not a mark or an empty marker.
	ErrBadCell = errors.New("tictactoe: unrecognized cell")
)
