package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	actionNew     = "new"
	actionMove    = "move"
	actionRestart = "restart"
	actionBoard   = "board"
	actionHelp    = "help"
	actionQuit    = "quit"
	actionExit    = "exit"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidArgs   = errors.New("invalid arguments")

	errQuit = errors.New("quit requested")
)

type gameManager interface {
	StartGame(first, second string) error
	Restart() error
	MakeTurn(position int) tictactoe.TurnResult

	State() tictactoe.State
	Board() [entity.BoardSize]entity.Cell
	CurrentPlayer() *entity.Player
}

type handler func(ctx context.Context, args []string, out io.Writer) error

// Options - what the console does before the first command.
type Options struct {
	Prompt string

	// AutoStart seats Players right away instead of waiting for "new".
	AutoStart bool
	Players   [2]string
}

type Server struct {
	logger  *slog.Logger
	game    gameManager
	options Options

	handlers map[string]handler
}

func New(logger *slog.Logger, game gameManager, options Options) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		game:    game,
		options: options,

		handlers: make(map[string]handler),
	}

	server.handlers[actionNew] = server.handleNewGame
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionRestart] = server.handleRestart
	server.handlers[actionBoard] = server.handleBoard
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit
	server.handlers[actionExit] = server.handleQuit

	return server
}

// Start - reads commands from in until EOF, quit, or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := that.greet(ctx, out); err != nil {
		return err
	}

	lines, readErr := readLines(ctx, in)

	for {
		if err := that.writePrompt(out); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("console stopped", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("input closed")
				return nil
			}

			err := that.processLine(ctx, line, out)
			if errors.Is(err, errQuit) {
				log.Info("quit requested")
				return nil
			}

			if err != nil {
				log.Debug("command failed", "line", line, "error", err)

				if _, writeErr := fmt.Fprintf(out, "error: %v\n", err); writeErr != nil {
					return fmt.Errorf("failed to write output: %w", writeErr)
				}
			}
		}
	}
}

func (that *Server) greet(ctx context.Context, out io.Writer) error {
	if _, err := io.WriteString(out, "Tic-Tac-Toe\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !that.options.AutoStart {
		return that.handleHelp(ctx, nil, out)
	}

	return that.handleNewGame(ctx, that.options.Players[:], out)
}

func (that *Server) writePrompt(out io.Writer) error {
	if that.options.Prompt == "" {
		return nil
	}

	if _, err := io.WriteString(out, that.options.Prompt); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// processLine - dispatches one input line. A bare number is shorthand for "move".
func (that *Server) processLine(ctx context.Context, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	action := strings.ToLower(fields[0])
	args := fields[1:]

	if _, err := strconv.Atoi(action); err == nil {
		action, args = actionMove, fields
	}

	if handle, ok := that.handlers[action]; ok {
		return handle(ctx, args, out)
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}

		errCh <- scanner.Err()
	}()

	return lines, errCh
}
