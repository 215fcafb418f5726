package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Line is a triple of cells given as 1-based positions.
type Line [3]int

// WinLines lists every line that wins the round when one player fills it.
var WinLines = [8]Line{
	// rows
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	// columns
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	// diagonals
	{1, 5, 9},
	{3, 5, 7},
}

// Outcome is the result of an accepted move: Continue, Won(player) or Draw.
type Outcome struct {
	Status entity.Status
	Winner entity.Player
}

var Continue = Outcome{Status: entity.StatusInProgress}

func Won(player entity.Player) Outcome {
	return Outcome{Status: entity.StatusWon, Winner: player}
}

var Draw = Outcome{Status: entity.StatusDraw}

func (that Outcome) IsTerminal() bool {
	return that.Status != entity.StatusInProgress
}

func (that Outcome) String() string {
	switch that.Status {
	case entity.StatusWon:
		return "won(" + that.Winner.String() + ")"
	case entity.StatusDraw:
		return "draw"
	default:
		return "continue"
	}
}

// CreateGame returns the initial state of a round.
func CreateGame() entity.Game {
	return entity.NewGame()
}

// SubmitMove applies the current player's move at position (1-9).
// On error the returned game equals the one passed in.
func SubmitMove(game entity.Game, position int) (entity.Game, Outcome, error) {
	if err := game.ConfirmInProgress(); err != nil {
		return game, outcomeOf(game), err
	}

	row, col, err := entity.PositionToCoords(position)
	if err != nil {
		return game, Continue, fmt.Errorf("invalid move: %w", err)
	}

	next := game
	if err = next.Board.Place(row, col, next.Turn); err != nil {
		return game, Continue, fmt.Errorf("invalid move: %w", err)
	}

	next = updateGameStatus(next)

	return next, outcomeOf(next), nil
}

// updateGameStatus - checks the game status after the current player moved.
func updateGameStatus(game entity.Game) entity.Game {
	switch {
	case hasWon(&game.Board, game.Turn):
		game.Status = entity.StatusWon
		game.Winner = game.Turn
	case game.Board.IsFull():
		game.Status = entity.StatusDraw
	default:
		game.Turn = game.Turn.Opponent()
	}

	return game
}

// hasWon checks all lines for the player; only the player who just moved can complete one.
func hasWon(board *entity.Board, player entity.Player) bool {
	won := false
	for _, line := range WinLines {
		if lineFilledBy(board, line, player) {
			won = true
		}
	}

	return won
}

func lineFilledBy(board *entity.Board, line Line, player entity.Player) bool {
	for _, position := range line {
		row, col, err := entity.PositionToCoords(position)
		if err != nil {
			return false
		}

		cell, err := board.CellAt(row, col)
		if err != nil || cell != player.Mark() {
			return false
		}
	}

	return true
}

func outcomeOf(game entity.Game) Outcome {
	switch game.Status {
	case entity.StatusWon:
		return Won(game.Winner)
	case entity.StatusDraw:
		return Draw
	default:
		return Continue
	}
}
