package apperror

import "errors"

var (
	ErrInvalidBoardSize = errors.New("board size must be between 3 and 29")
	ErrInvalidCell      = errors.New("invalid cell coordinates")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrGameFinished     = errors.New("game is already finished")
	ErrInputClosed      = errors.New("input is closed")
	ErrInterrupted      = errors.New("game interrupted by player")
)
