package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const helpText = `Commands:
  new <first> <second>  start a game, first player plays x
  move <cell>           mark a cell (0-8), or just type the number
  restart               start over with the same players
  board                 show the board
  help                  show this help
  quit                  leave
`

func (that *Server) handleNewGame(_ context.Context, args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: new <first> <second>", ErrInvalidArgs)
	}

	if err := that.game.StartGame(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return that.writeBoard(out)
}

func (that *Server) handleMove(_ context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: move <cell>", ErrInvalidArgs)
	}

	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: cell must be a number, got %q", ErrInvalidArgs, args[0])
	}

	result := that.game.MakeTurn(position)

	var view string
	if result.Status != tictactoe.StatusError {
		view = renderBoard(that.game.Board())
	}

	view += statusMessage(result, that.game.State()) + "\n"

	return write(out, view)
}

func (that *Server) handleRestart(_ context.Context, _ []string, out io.Writer) error {
	if err := that.game.Restart(); err != nil {
		if errors.Is(err, apperror.ErrPlayersNotSet) {
			return write(out, noGameMessage+"\n")
		}

		return fmt.Errorf("failed to restart game: %w", err)
	}

	return that.writeBoard(out)
}

func (that *Server) handleBoard(_ context.Context, _ []string, out io.Writer) error {
	return that.writeBoard(out)
}

func (that *Server) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	return write(out, helpText)
}

func (that *Server) handleQuit(_ context.Context, _ []string, out io.Writer) error {
	if err := write(out, "Bye!\n"); err != nil {
		return err
	}

	return errQuit
}

func (that *Server) writeBoard(out io.Writer) error {
	state := that.game.State()
	if state == tictactoe.StateSetup {
		return write(out, noGameMessage+"\n")
	}

	return write(out, renderBoard(that.game.Board())+stateMessage(state, that.game.CurrentPlayer())+"\n")
}

func write(out io.Writer, text string) error {
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
