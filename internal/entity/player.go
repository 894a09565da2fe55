package entity

import (
	"math"
	"strconv"
)

// Cell states. OutOfRange is what Board.Get reports for coordinates outside the grid,
// it never equals a player mark or EmptyCell.
const (
	EmptyCell  = 0
	PlayerX    = 1
	PlayerO    = -1
	OutOfRange = math.MaxInt
)

// PlayerNumber - 1 for X, 2 for O.
func PlayerNumber(mark int) int {
	if mark == PlayerX {
		return 1
	}
	return 2
}

// PlayerName - "Player 1" or "Player 2".
func PlayerName(mark int) string {
	return "Player " + strconv.Itoa(PlayerNumber(mark))
}
