package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

// boardFrom builds a board from rows, rows[y][x].
func boardFrom(t *testing.T, rows [][]int) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(t, err)

	for y, row := range rows {
		for x, cell := range row {
			board.Set(x, y, cell)
		}
	}

	return board
}

func newGame(t *testing.T, size int) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("123", size)
	require.NoError(t, err)

	return game
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]int
		player int
		want   bool
	}{
		{
			name:   "Top row wins for X",
			rows:   [][]int{{x, x, x}, {e, e, e}, {e, e, e}},
			player: x,
			want:   true,
		},
		{
			name:   "Top row of X is not a win for O",
			rows:   [][]int{{x, x, x}, {e, e, e}, {e, e, e}},
			player: o,
			want:   false,
		},
		{
			name:   "Column wins for O",
			rows:   [][]int{{x, o, e}, {x, o, e}, {e, o, x}},
			player: o,
			want:   true,
		},
		{
			name:   "Main diagonal wins for X",
			rows:   [][]int{{x, e, e}, {e, x, e}, {e, e, x}},
			player: x,
			want:   true,
		},
		{
			name:   "Anti-diagonal wins for O",
			rows:   [][]int{{e, e, o}, {e, o, e}, {o, e, e}},
			player: o,
			want:   true,
		},
		{
			name:   "Empty board has no winner",
			rows:   [][]int{{e, e, e}, {e, e, e}, {e, e, e}},
			player: x,
			want:   false,
		},
		{
			name:   "Full board without a line",
			rows:   [][]int{{x, o, x}, {o, x, o}, {o, x, o}},
			player: x,
			want:   false,
		},
		{
			name: "Three in a row inside a larger board",
			rows: [][]int{
				{e, e, e, e, e},
				{e, e, e, e, e},
				{e, e, o, o, o},
				{e, e, e, e, e},
				{e, e, e, e, e},
			},
			player: o,
			want:   true,
		},
		{
			name: "Down-left diagonal touching the right edge",
			rows: [][]int{
				{e, e, e, x},
				{e, e, x, e},
				{e, x, e, e},
				{e, e, e, e},
			},
			player: x,
			want:   true,
		},
		{
			name: "Marks wrapping across a row end do not count",
			rows: [][]int{
				{e, e, x, x},
				{x, e, e, e},
				{e, e, e, e},
				{e, e, e, e},
			},
			player: x,
			want:   false,
		},
		{
			name: "Two in a row at the bottom edge do not count",
			rows: [][]int{
				{e, e, e, e},
				{e, e, e, e},
				{e, e, e, o},
				{e, e, e, o},
			},
			player: o,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board in the described position
			board := boardFrom(t, tt.rows)

			// When: checking for a win
			got := CheckWin(board, tt.player)

			// Then: the result matches
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckWin_DiagonalOnEveryBoardSize(t *testing.T) {
	for size := entity.MinBoardSize; size <= entity.MaxBoardSize; size++ {
		// Given: X at (0,0), (1,1), (2,2)
		board, err := entity.NewBoard(size)
		require.NoError(t, err)
		for i := range 3 {
			board.Set(i, i, x)
		}

		// Then: X wins and O does not
		assert.True(t, CheckWin(board, x), "size %d", size)
		assert.False(t, CheckWin(board, o), "size %d", size)
	}
}

func TestIsPlayable(t *testing.T) {
	assert.True(t, IsPlayable(boardFrom(t, [][]int{{x, o, x}, {o, x, o}, {o, x, e}})))
	assert.False(t, IsPlayable(boardFrom(t, [][]int{{x, o, x}, {o, x, o}, {o, x, o}})))
}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: player X plays the center
		err := MakeTurn(game, 1, 1)
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to O
		assert.Equal(t, x, game.Board.Get(1, 1))
		assert.Equal(t, o, game.Turn)
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds the center
		game := newGame(t, 3)
		require.NoError(t, MakeTurn(game, 1, 1))

		// When: O tries the same cell
		err := MakeTurn(game, 1, 1)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, x, game.Board.Get(1, 1))
		assert.Equal(t, o, game.Turn)
		assert.Equal(t, 1, game.Moves)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := newGame(t, 3)

		assert.ErrorIs(t, MakeTurn(game, 3, 0), apperror.ErrInvalidCell)
		assert.ErrorIs(t, MakeTurn(game, 0, -1), apperror.ErrInvalidCell)
		assert.Equal(t, x, game.Turn)
	})

	t.Run("Top row win finishes the game", func(t *testing.T) {
		// Given: a new 3x3 game
		game := newGame(t, 3)

		// When: X completes the top row
		moves := [][2]int{{0, 0}, {1, 1}, {1, 0}, {2, 2}, {2, 0}}
		for _, mv := range moves {
			require.NoError(t, MakeTurn(game, mv[0], mv[1]))
		}

		// Then: X wins and keeps the turn
		assert.True(t, game.IsFinished())
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, x, game.Turn)
		assert.False(t, game.IsDraw())
	})

	t.Run("Filling the board without a line is a draw", func(t *testing.T) {
		// Given: a new 3x3 game
		game := newGame(t, 3)

		// When: the board fills to x o x / x o o / o x x
		moves := [][2]int{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {0, 1}, {2, 1}, {1, 2}, {0, 2}, {2, 2}}
		for i, mv := range moves[:len(moves)-1] {
			require.NoError(t, MakeTurn(game, mv[0], mv[1]), "move %d", i)
			require.True(t, game.IsOngoing(), "move %d", i)
		}
		require.NoError(t, MakeTurn(game, 2, 2))

		// Then: the game is a draw
		assert.True(t, game.IsDraw())
		assert.Equal(t, entity.EmptyCell, game.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a finished game
		game := newGame(t, 3)
		game.Status = entity.StatusFinished

		// When: a player tries to move
		err := MakeTurn(game, 0, 0)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, e, game.Board.Get(0, 0))
	})

	t.Run("Move in a game with unknown status", func(t *testing.T) {
		// Given: a game whose status is neither ongoing nor finished
		game := newGame(t, 3)
		game.Status = "corrupted"

		// When: a player tries to move
		err := MakeTurn(game, 0, 0)

		// Then: the status error is returned and the board is untouched
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
		assert.Equal(t, e, game.Board.Get(0, 0))
		assert.Equal(t, 0, game.Moves)
	})
}
