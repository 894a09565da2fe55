package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Game struct {
	ID     string
	Board  *Board
	Turn   int
	Winner int
	Status string
	Moves  int
}

func NewGame(id string, size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("could not create board: %w", err)
	}

	return &Game{
		ID:     id,
		Board:  board,
		Turn:   PlayerX,
		Winner: EmptyCell,
		Status: StatusOngoing,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw - the game finished without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("unknown game status: %s", that.Status)
	}
}
