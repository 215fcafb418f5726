package entity

// Scoreboard is the in-memory tally of finished rounds for one session.
type Scoreboard struct {
	XWins int
	OWins int
	Draws int
}

// Record counts a finished round. Rounds still in progress are ignored.
func (that *Scoreboard) Record(status Status, winner Player) {
	switch status {
	case StatusWon:
		if winner == PlayerO {
			that.OWins++
		} else {
			that.XWins++
		}
	case StatusDraw:
		that.Draws++
	case StatusInProgress:
	}
}

func (that *Scoreboard) Rounds() int {
	return that.XWins + that.OWins + that.Draws
}
