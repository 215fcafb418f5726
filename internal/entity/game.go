package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Status is the lifecycle state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Game is the whole state of one round. It is a value: copies never share the board.
type Game struct {
	Board  Board
	Turn   Player
	Status Status
	Winner Player
}

func NewGame() Game {
	return Game{
		Board:  NewBoard(),
		Turn:   PlayerX,
		Status: StatusInProgress,
	}
}

// CellAt is the read-only board view for renderers.
func (that Game) CellAt(row, col int) (Cell, error) {
	return that.Board.CellAt(row, col)
}

func (that Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that Game) IsDraw() bool {
	return that.Status == StatusDraw
}

func (that Game) IsTerminal() bool {
	return that.IsWon() || that.IsDraw()
}

// ConfirmInProgress returns ErrGameAlreadyOver for a terminal round.
func (that Game) ConfirmInProgress() error {
	if that.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyOver, that.Status)
	}

	return nil
}
