package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/render"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const legend = "Player 1 = X\t\tPlayer 2 = O"

type terminalDep interface {
	ReadKey() (terminal.Key, error)
	Write(text string)
	Clear()
	SetCursorPosition(x, y int)
	CursorPosition() (int, int)
}

// Outcome is how a finished game ended. Winner is entity.EmptyCell on a draw.
type Outcome struct {
	Winner int
	Draw   bool
	Moves  int
}

func (o Outcome) Announcement() string {
	if o.Draw {
		return "Nobody won !"
	}
	return entity.PlayerName(o.Winner) + " won !"
}

type Engine struct {
	logger *slog.Logger
	term   terminalDep
	game   *entity.Game
	cursor Cursor
}

func New(logger *slog.Logger, term terminalDep, game *entity.Game) *Engine {
	return &Engine{
		logger: logger.With("component", "engine", "game_id", game.ID),
		term:   term,
		game:   game,
	}
}

func (that *Engine) Game() *entity.Game {
	return that.game
}

// Run plays turns until someone wins or the board fills up.
// It fails with apperror.ErrInterrupted when a player quits and with
// apperror.ErrInputClosed when the terminal goes away.
func (that *Engine) Run() (Outcome, error) {
	that.logger.Info("Game started", "size", that.game.Board.Size())

	for {
		that.render(false)
		that.term.Write("\n" + legend + "\n")
		that.term.Write(entity.PlayerName(that.game.Turn) + " can play. Select the slot you want to play on")

		if err := that.awaitMove(); err != nil {
			that.logger.Info("Game stopped", "moves", that.game.Moves, "error", err)
			return Outcome{}, err
		}

		if that.game.IsFinished() {
			outcome := Outcome{
				Winner: that.game.Winner,
				Draw:   that.game.IsDraw(),
				Moves:  that.game.Moves,
			}

			that.render(true)
			that.term.Write("\n\n" + outcome.Announcement())
			that.logger.Info("Game finished", "winner", outcome.Winner, "draw", outcome.Draw, "moves", outcome.Moves)

			return outcome, nil
		}
	}
}

// awaitMove reads keys until the current player commits a mark on an empty cell.
func (that *Engine) awaitMove() error {
	size := that.game.Board.Size()

	for {
		that.term.SetCursorPosition(render.ToScreen(that.cursor.X, that.cursor.Y))

		key, err := that.term.ReadKey()
		if err != nil {
			return fmt.Errorf("could not read key: %w", err)
		}

		switch key {
		case terminal.KeyEnter:
			player := that.game.Turn

			err = tictactoe.MakeTurn(that.game, that.cursor.X, that.cursor.Y)
			if errors.Is(err, apperror.ErrCellOccupied) {
				that.logger.Debug("Move rejected", "key", key.String(), "x", that.cursor.X, "y", that.cursor.Y, "player", player)
				continue
			}
			if err != nil {
				return fmt.Errorf("could not make turn: %w", err)
			}

			that.logger.Debug("Move made", "x", that.cursor.X, "y", that.cursor.Y, "player", player)
			return nil
		case terminal.KeyInterrupt:
			return apperror.ErrInterrupted
		default:
			that.cursor.Move(key, size)
			that.logger.Debug("Key pressed", "key", key.String(), "x", that.cursor.X, "y", that.cursor.Y)
		}
	}
}

// render draws the board at the origin. The screen is cleared first when forced or when
// the write position has left the board area, otherwise the board is overwritten in place.
func (that *Engine) render(forceClear bool) {
	extent := render.Extent(that.game.Board)

	col, row := that.term.CursorPosition()
	if forceClear || row > extent || col > extent {
		that.term.Clear()
	} else {
		that.term.SetCursorPosition(0, 0)
	}

	that.term.Write(render.Board(that.game.Board))
}
