package rules

// Outcome is the result of one move against another, always read from the
// perspective of the first move.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the outcome as shown to players.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Opposite returns the outcome seen from the other side.
func (o Outcome) Opposite() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	default:
		return o
	}
}

// Resolve reports how move a fares against move b in a game of n moves.
//
// Moves sit on a cycle of length n. A move beats the n/2 moves just behind it
// on the cycle and loses to the n/2 ahead of it. n must be odd and at least 3.
func Resolve(a, b, n int) Outcome {
	d := ((a-b)%n + n) % n
	switch {
	case d == 0:
		return Draw
	case d <= n/2:
		return Win
	default:
		return Lose
	}
}
