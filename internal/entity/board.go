package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 29
)

// Board is a square grid of cell states addressed by (x, y), x being the column.
type Board struct {
	size  int
	cells []int
}

func NewBoard(size int) (*Board, error) {
	if !IsValidBoardSize(size) {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]int, size*size),
	}, nil
}

func IsValidBoardSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize
}

func (that *Board) Size() int {
	return that.size
}

// Gaps - number of separators between cells on one row.
func (that *Board) Gaps() int {
	return that.size - 1
}

func (that *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.size && y < that.size
}

// Get returns the cell state, or OutOfRange when (x, y) is outside the board.
func (that *Board) Get(x, y int) int {
	if !that.InBounds(x, y) {
		return OutOfRange
	}

	return that.cells[x+y*that.size]
}

// Set writes the cell state. Writes outside the board are ignored.
func (that *Board) Set(x, y, value int) {
	if !that.InBounds(x, y) {
		return
	}

	that.cells[x+y*that.size] = value
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
