package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3

	MinPosition = 1
	MaxPosition = BoardSize * BoardSize
)

// Cell is the state of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	MarkedX
	MarkedO
)

func (that Cell) String() string {
	switch that {
	case MarkedX:
		return "X"
	case MarkedO:
		return "O"
	default:
		return ""
	}
}

// Board is a fixed 3x3 grid addressed by row and column.
// The zero value is an empty board.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

func (that *Board) CellAt(row, col int) (Cell, error) {
	if !inRange(row) || !inRange(col) {
		return Empty, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return that.cells[row][col], nil
}

func (that *Board) IsEmpty(row, col int) (bool, error) {
	cell, err := that.CellAt(row, col)
	if err != nil {
		return false, err
	}

	return cell == Empty, nil
}

// Place puts the player's mark on an empty cell. It never overwrites a marked cell.
func (that *Board) Place(row, col int, player Player) error {
	isEmpty, err := that.IsEmpty(row, col)
	if err != nil {
		return err
	}

	if !isEmpty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = player.Mark()

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// PositionToCoords converts a 1-based position number into row and column.
func PositionToCoords(position int) (int, int, error) {
	if position < MinPosition || position > MaxPosition {
		return 0, 0, fmt.Errorf("%w: got %d", apperror.ErrInvalidPosition, position)
	}

	return (position - 1) / BoardSize, (position - 1) % BoardSize, nil
}

// CoordsToPosition is the inverse of PositionToCoords for in-range coordinates.
func CoordsToPosition(row, col int) int {
	return row*BoardSize + col + 1
}

func inRange(index int) bool {
	return index >= 0 && index < BoardSize
}
