package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	rowSeparator = "---+---+---\n"

	welcomeText  = "Welcome to Tic-Tac-Toe! Player 1 is X, Player 2 is O.\n"
	acceptedText = "Nice move!\n"
	occupiedText = "That spot's already taken. Try again!\n"
	winText      = "Player %s wins! Great game!\n"
	drawText     = "It's a tie! Well played, both of you!\n"
	summaryText  = "Rounds played: %d (X wins: %d, O wins: %d, draws: %d)\n"
	goodbyeText  = "Thanks for playing Tic-Tac-Toe! See you next time!\n"
)

const guideText = "Use numbers (1-9) to choose a position:\n" +
	" 1 | 2 | 3 \n" + rowSeparator +
	" 4 | 5 | 6 \n" + rowSeparator +
	" 7 | 8 | 9 \n"

// RenderBoard draws the grid; free cells show their position number.
func RenderBoard(game entity.Game) string {
	var builder strings.Builder

	for row := 0; row < entity.BoardSize; row++ {
		symbols := make([]string, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			symbols = append(symbols, cellSymbol(game, row, col))
		}

		builder.WriteString(" " + strings.Join(symbols, " | ") + "\n")
		if row < entity.BoardSize-1 {
			builder.WriteString(rowSeparator)
		}
	}

	return builder.String()
}

func cellSymbol(game entity.Game, row, col int) string {
	cell, err := game.CellAt(row, col)
	if err != nil || cell == entity.Empty {
		return strconv.Itoa(entity.CoordsToPosition(row, col))
	}

	return cell.String()
}

func (that *Console) ShowWelcome() error {
	text := welcomeText
	if !that.conf.HideGuide {
		text += guideText
	}

	return that.print(text)
}

func (that *Console) ShowBoard(game entity.Game) error {
	return that.print("\n" + RenderBoard(game) + "\n")
}

func (that *Console) ShowAccepted() error {
	return that.print(acceptedText)
}

func (that *Console) ShowRejected(reason error) error {
	switch {
	case errors.Is(reason, apperror.ErrCellOccupied):
		return that.print(occupiedText)
	case errors.Is(reason, apperror.ErrInvalidPosition):
		return that.print(moveRetryNotice)
	default:
		return that.print(fmt.Sprintf("Move rejected: %v\n", reason))
	}
}

func (that *Console) ShowOutcome(outcome tictactoe.Outcome) error {
	switch outcome.Status {
	case entity.StatusWon:
		return that.print(fmt.Sprintf(winText, outcome.Winner))
	case entity.StatusDraw:
		return that.print(drawText)
	default:
		return nil
	}
}

func (that *Console) ShowSummary(scoreboard entity.Scoreboard) error {
	summary := fmt.Sprintf(summaryText, scoreboard.Rounds(), scoreboard.XWins, scoreboard.OWins, scoreboard.Draws)

	return that.print("\n" + summary + goodbyeText)
}
