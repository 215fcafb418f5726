package apperror

import "errors"

var (
	ErrOutOfRange      = errors.New("cell is out of board range")
	ErrInvalidPosition = errors.New("position must be between 1 and 9")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
)

// IsRecoverable reports whether the move can be retried against the same game state.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidPosition) || errors.Is(err, ErrCellOccupied)
}
