package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	welcome  = "Welcome to Tic Tac Toe"
	question = "What size of game do you want ? "
)

// BoardSize greets the players and asks for a board size until a line holds a whole
// number in [3, 30). It gives up only when the input ends.
func BoardSize(in io.Reader, out *termenv.Output) (int, error) {
	fmt.Fprintln(out, out.String(welcome).Bold())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, question)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("could not read board size: %w", err)
			}
			return 0, apperror.ErrInputClosed
		}

		size, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && entity.IsValidBoardSize(size) {
			return size, nil
		}
	}
}
