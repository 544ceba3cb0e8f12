package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type gameController interface {
	InitPlayers(name1, name2 string)
	InitGame() error
	Move(position int) (tictactoe.TurnResult, error)

	State() tictactoe.State
	Board() [entity.BoardSize]entity.Cell
	MovesPlayed() int
	CurrentPlayer() *entity.Player
	Players() [2]*entity.Player
}

type GameManager struct {
	logger     *slog.Logger
	controller gameController
}

func NewGameManager(logger *slog.Logger, controller gameController) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		controller: controller,
	}
}

// StartGame - seats both players and starts a new match.
func (that *GameManager) StartGame(first, second string) error {
	log := that.logger.With("method", "StartGame")

	that.warnIfDiscarding(log)

	that.controller.InitPlayers(first, second)

	if err := that.controller.InitGame(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started", "player_x", first, "player_o", second)

	return nil
}

// Restart - starts a new match with the same players.
func (that *GameManager) Restart() error {
	log := that.logger.With("method", "Restart")

	that.warnIfDiscarding(log)

	if err := that.controller.InitGame(); err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	log.Info("game restarted")

	return nil
}

// MakeTurn - plays position for whoever's turn it is.
func (that *GameManager) MakeTurn(position int) tictactoe.TurnResult {
	log := that.logger.With("method", "MakeTurn", "position", position)

	if player := that.controller.CurrentPlayer(); player != nil {
		log = log.With("player", player.Name(), "mark", player.Mark().String())
	}

	result, err := that.controller.Move(position)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrGameIsNotStarted):
			log.Warn("move outside of an active game", "error", err)
		default:
			log.Warn("move rejected", "error", err)
		}

		return result
	}

	switch result.Status {
	case tictactoe.StatusWinner:
		log.Info("game won", "winner", result.Winner, "moves", that.controller.MovesPlayed())
	case tictactoe.StatusDraw:
		log.Info("game drawn")
	default:
		log.Debug("turn accepted", "next_player", result.NextPlayer)
	}

	return result
}

func (that *GameManager) State() tictactoe.State {
	return that.controller.State()
}

func (that *GameManager) Board() [entity.BoardSize]entity.Cell {
	return that.controller.Board()
}

func (that *GameManager) CurrentPlayer() *entity.Player {
	return that.controller.CurrentPlayer()
}

func (that *GameManager) Players() [2]*entity.Player {
	return that.controller.Players()
}

func (that *GameManager) MovesPlayed() int {
	return that.controller.MovesPlayed()
}

// warnIfDiscarding - starting over is always allowed, but an unfinished match is lost.
func (that *GameManager) warnIfDiscarding(log *slog.Logger) {
	if that.controller.State() == tictactoe.StateInProgress && that.controller.MovesPlayed() > 0 {
		log.Warn("discarding game in progress", "moves", that.controller.MovesPlayed())
	}
}
