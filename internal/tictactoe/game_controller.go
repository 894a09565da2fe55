package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// WinLength is the number of aligned marks that wins, whatever the board size.
const WinLength = 3

// direction is a step from one cell of a line to the next.
type direction struct {
	dx, dy int
}

// Directions probed from every origin cell: right, down, down-right, down-left.
var Directions = [4]direction{
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: 1, dy: 1},
	{dx: -1, dy: 1},
}

// MakeTurn places the current player's mark at (x, y) and updates the game status.
// The turn passes to the opponent only when the game goes on.
func MakeTurn(gameInstance *entity.Game, x, y int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(gameInstance.Board, x, y); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Set(x, y, gameInstance.Turn)
	gameInstance.Moves++
	updateGameStatus(gameInstance)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, x, y int) error {
	if !board.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if board.Get(x, y) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move of the current player.
func updateGameStatus(gameInstance *entity.Game) {
	player := gameInstance.Turn

	switch {
	case CheckWin(gameInstance.Board, player):
		gameInstance.Winner = player
		gameInstance.Status = entity.StatusFinished
	case !IsPlayable(gameInstance.Board):
		gameInstance.Winner = entity.EmptyCell
		gameInstance.Status = entity.StatusFinished
	default:
		gameInstance.Turn = toggleMark(player)
	}
}

func toggleMark(currentMark int) int {
	return -currentMark
}

// CheckWin reports whether player has WinLength marks in a row anywhere on the board.
func CheckWin(board *entity.Board, player int) bool {
	for y := range board.Size() {
		for x := range board.Size() {
			for _, dir := range Directions {
				if checkLine(board, x, y, dir, player) {
					return true
				}
			}
		}
	}

	return false
}

// checkLine relies on Board.Get returning entity.OutOfRange off the board,
// so a line running past an edge simply fails to match.
func checkLine(board *entity.Board, x, y int, dir direction, player int) bool {
	for i := range WinLength {
		if board.Get(x+i*dir.dx, y+i*dir.dy) != player {
			return false
		}
	}

	return true
}

// IsPlayable - at least one cell is still empty.
func IsPlayable(board *entity.Board) bool {
	return !board.IsFull()
}
