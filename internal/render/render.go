// Package render lays a board out as text: one line per row, cells separated by '|'
// and rows separated by a line of '-'.
package render

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	cellSeparator = "|"
	rowSeparator  = "-"
)

// Symbol returns the character drawn for a cell state. Unknown states render as "E".
func Symbol(cell int) string {
	switch cell {
	case entity.PlayerX:
		return "X"
	case entity.PlayerO:
		return "O"
	case entity.EmptyCell:
		return " "
	default:
		return "E"
	}
}

// Board renders the grid without a trailing newline.
func Board(board *entity.Board) string {
	var sb strings.Builder

	divider := strings.Repeat(rowSeparator, board.Size()+board.Gaps())

	for y := range board.Size() {
		if y > 0 {
			sb.WriteString("\n")
			sb.WriteString(divider)
			sb.WriteString("\n")
		}

		for x := range board.Size() {
			if x > 0 {
				sb.WriteString(cellSeparator)
			}
			sb.WriteString(Symbol(board.Get(x, y)))
		}
	}

	return sb.String()
}

// Extent is the last row and column index the rendered board occupies, 2*size-2.
func Extent(board *entity.Board) int {
	return board.Size() + board.Gaps() - 1
}

// ToScreen maps a board coordinate to its position in the rendered text.
func ToScreen(x, y int) (int, int) {
	return 2 * x, 2 * y
}
