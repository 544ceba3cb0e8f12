package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const (
	boardSide = 3

	noGameMessage   = `No game yet. Type "new <first> <second>" to start.`
	gameOverMessage = `The game is over. Type "restart" to play again.`
)

// renderBoard - draws the grid. Free cells show their number so players know what to type.
func renderBoard(cells [entity.BoardSize]entity.Cell) string {
	var view strings.Builder

	for row := 0; row < boardSide; row++ {
		if row > 0 {
			view.WriteString("---+---+---\n")
		}

		for col := 0; col < boardSide; col++ {
			position := row*boardSide + col
			if col > 0 {
				view.WriteString("|")
			}

			symbol := cells[position].String()
			if cells[position].IsEmpty() {
				symbol = strconv.Itoa(position)
			}

			view.WriteString(" " + symbol + " ")
		}

		view.WriteString("\n")
	}

	return view.String()
}

// statusMessage - text shown after a move, chosen by the result status.
func statusMessage(result tictactoe.TurnResult, state tictactoe.State) string {
	switch result.Status {
	case tictactoe.StatusWinner:
		return fmt.Sprintf("%s (%s) wins!", result.Winner, result.Mark)
	case tictactoe.StatusDraw:
		return "It's a draw!"
	case tictactoe.StatusContinue:
		return fmt.Sprintf("%s's turn.", result.NextPlayer)
	default:
		switch state {
		case tictactoe.StateSetup:
			return noGameMessage
		case tictactoe.StateWon, tictactoe.StateDrawn:
			return gameOverMessage
		default:
			return "That cell is not available, try another one."
		}
	}
}

func stateMessage(state tictactoe.State, current *entity.Player) string {
	switch state {
	case tictactoe.StateInProgress:
		return fmt.Sprintf("%s's turn (%s).", current.Name(), current.Mark())
	case tictactoe.StateWon, tictactoe.StateDrawn:
		return gameOverMessage
	default:
		return noGameMessage
	}
}
