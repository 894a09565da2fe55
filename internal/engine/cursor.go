package engine

import "github.com/rocketscienceinc/tictactoe-terminal/internal/terminal"

// Cursor is the selected cell in board coordinates.
type Cursor struct {
	X, Y int
}

// Move steps one cell in the key's direction, staying on a board of the given size.
// Non-arrow keys leave the cursor where it is.
func (c *Cursor) Move(key terminal.Key, size int) {
	switch key {
	case terminal.KeyUp:
		c.Y = max(c.Y-1, 0)
	case terminal.KeyDown:
		c.Y = min(c.Y+1, size-1)
	case terminal.KeyLeft:
		c.X = max(c.X-1, 0)
	case terminal.KeyRight:
		c.X = min(c.X+1, size-1)
	}
}
