package entity

// Player is one of the two sides of a round.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// Mark returns the cell state the player leaves on the board.
func (that Player) Mark() Cell {
	if that == PlayerO {
		return MarkedO
	}
	return MarkedX
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}
