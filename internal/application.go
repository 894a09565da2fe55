package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/engine"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/prompt"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/render"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/terminal"
)

type gameScreen interface {
	ReadKey() (terminal.Key, error)
	Write(text string)
	Clear()
	SetCursorPosition(x, y int)
	CursorPosition() (int, int)
	Close()
}

// RunApp - asks for the board size, then plays one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	output := NewOutput(os.Stdout, conf)

	size, err := prompt.BoardSize(os.Stdin, output)
	if err != nil {
		return fmt.Errorf("could not get board size: %w", err)
	}

	var opts []terminal.Option
	if !conf.NoColor {
		opts = append(opts, terminal.WithColor())
	}

	screen, err := terminal.New(opts...)
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	return Play(logger, output, screen, size)
}

// NewOutput - stdout writer for everything printed outside the game screen.
func NewOutput(w io.Writer, conf *config.Config) *termenv.Output {
	if conf.NoColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// Play runs a game of the given size on screen and prints the result to output once the
// screen is released. Quitting the game is not an error.
func Play(logger *slog.Logger, output *termenv.Output, screen gameScreen, size int) error {
	log := logger.With("component", "app")

	game, err := entity.NewGame(uuid.NewString(), size)
	if err != nil {
		screen.Close()
		return fmt.Errorf("could not create game: %w", err)
	}

	// raw mode swallows Ctrl-C, a signal still has to restore the terminal
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig, ok := <-sigs
		if !ok {
			return
		}
		log.Info("Received signal, shutting down", "signal", sig)
		screen.Close()
	}()

	// the engine's last frame is never shown, the screen closes right away;
	// printSummary repeats it on stdout
	outcome, err := engine.New(logger, screen, game).Run()

	signal.Stop(sigs)
	close(sigs)
	screen.Close()

	switch {
	case errors.Is(err, apperror.ErrInterrupted), errors.Is(err, apperror.ErrInputClosed):
		log.Info("Game aborted", "game_id", game.ID, "moves", game.Moves)
		printAborted(output, game)
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	printSummary(output, game, outcome)

	return nil
}

func printSummary(output *termenv.Output, game *entity.Game, outcome engine.Outcome) {
	fmt.Fprintln(output, render.Board(game.Board))
	fmt.Fprintln(output)

	announcement := output.String(outcome.Announcement()).Bold()
	if !outcome.Draw {
		announcement = announcement.Foreground(markColor(output, outcome.Winner))
	}

	fmt.Fprintln(output, announcement)
}

func printAborted(output *termenv.Output, game *entity.Game) {
	fmt.Fprintln(output, render.Board(game.Board))
	fmt.Fprintln(output)
	fmt.Fprintln(output, output.String(fmt.Sprintf("Game aborted after %d moves", game.Moves)).Faint())
}

func markColor(output *termenv.Output, mark int) termenv.Color {
	if mark == entity.PlayerX {
		return output.Color("1")
	}
	return output.Color("4")
}
