package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// minMovesToWin is the earliest move on which a line can be completed.
const minMovesToWin = 5

type Status string

const (
	StatusError    Status = "error"
	StatusWinner   Status = "winner"
	StatusDraw     Status = "draw"
	StatusContinue Status = "continue"
)

type State string

const (
	StateSetup      State = "setup"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDrawn      State = "drawn"
)

// TurnResult is the outcome of a single move. Check Status before reading the other fields:
// winner sets Winner and Mark, draw sets Mark, continue sets Mark and NextPlayer.
type TurnResult struct {
	Status     Status      `json:"status"`
	Mark       entity.Cell `json:"mark,omitempty"`
	Winner     string      `json:"winner,omitempty"`
	NextPlayer string      `json:"next_player,omitempty"`
}

// GameController drives one match between two players on its own board.
type GameController struct {
	board   *entity.Board
	players [2]*entity.Player

	currentTurn  int
	movesCounter int
	started      bool
	draw         bool
	win          bool
}

func NewGameController() *GameController {
	return &GameController{
		board: entity.NewBoard(),
	}
}

// InitPlayers - first player plays x and moves first, second plays o.
func (that *GameController) InitPlayers(name1, name2 string) {
	// marks are constants, NewPlayer cannot fail here
	first, _ := entity.NewPlayer(name1, entity.MarkX)
	second, _ := entity.NewPlayer(name2, entity.MarkO)

	that.players = [2]*entity.Player{first, second}
}

// InitGame - starts a fresh match. Any match in progress is discarded.
func (that *GameController) InitGame() error {
	if that.players[0] == nil || that.players[1] == nil {
		return apperror.ErrPlayersNotSet
	}

	that.board.Init()
	that.currentTurn = 0
	that.movesCounter = 0
	that.draw = false
	that.win = false
	that.started = true

	return nil
}

// TakeTurn - places the current player's mark at position.
func (that *GameController) TakeTurn(position int) TurnResult {
	result, _ := that.Move(position)

	return result
}

// Move - same as TakeTurn, but also reports why a move was rejected.
func (that *GameController) Move(position int) (TurnResult, error) {
	if err := that.confirmOngoingState(); err != nil {
		return TurnResult{Status: StatusError}, err
	}

	player := that.players[that.currentTurn]

	if err := that.board.PlaceMark(position, player.Mark()); err != nil {
		return TurnResult{Status: StatusError}, fmt.Errorf("invalid turn: %w", err)
	}

	that.movesCounter++

	if that.movesCounter >= minMovesToWin && that.board.IsWinner(player.Mark()) {
		that.win = true

		return TurnResult{
			Status: StatusWinner,
			Mark:   player.Mark(),
			Winner: player.Name(),
		}, nil
	}

	if that.movesCounter == entity.BoardSize {
		that.draw = true

		return TurnResult{
			Status: StatusDraw,
			Mark:   player.Mark(),
		}, nil
	}

	that.currentTurn = (that.currentTurn + 1) % len(that.players)

	return TurnResult{
		Status:     StatusContinue,
		Mark:       player.Mark(),
		NextPlayer: that.players[that.currentTurn].Name(),
	}, nil
}

func (that *GameController) confirmOngoingState() error {
	switch {
	case !that.started:
		return apperror.ErrGameIsNotStarted
	case that.win, that.draw, that.movesCounter >= entity.BoardSize:
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

func (that *GameController) State() State {
	switch {
	case !that.started:
		return StateSetup
	case that.win:
		return StateWon
	case that.draw:
		return StateDrawn
	default:
		return StateInProgress
	}
}

func (that *GameController) Board() [entity.BoardSize]entity.Cell {
	return that.board.Cells()
}

func (that *GameController) MovesPlayed() int {
	return that.movesCounter
}

func (that *GameController) CurrentTurn() int {
	return that.currentTurn
}

// CurrentPlayer returns nil until players are set.
func (that *GameController) CurrentPlayer() *entity.Player {
	return that.players[that.currentTurn]
}

func (that *GameController) Players() [2]*entity.Player {
	return that.players
}
