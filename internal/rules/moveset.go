package rules

import (
	"fmt"
	"strings"
)

// MinMoves is the smallest playable move set.
const MinMoves = 3

// Reason identifies why a move list was rejected.
type Reason int

const (
	TooFewMoves Reason = iota + 1
	EvenCount
	DuplicateMove
)

func (r Reason) String() string {
	switch r {
	case TooFewMoves:
		return "too few moves"
	case EvenCount:
		return "even number of moves"
	case DuplicateMove:
		return "duplicate move"
	default:
		return "invalid moves"
	}
}

// ConfigError is returned by ParseMoveSet when the move list cannot form a game.
type ConfigError struct {
	Reason Reason
	Count  int
	Move   string // set for DuplicateMove
}

func (e *ConfigError) Error() string {
	switch e.Reason {
	case TooFewMoves:
		return fmt.Sprintf("need at least %d moves, got %d", MinMoves, e.Count)
	case EvenCount:
		return fmt.Sprintf("number of moves must be odd, got %d", e.Count)
	case DuplicateMove:
		return fmt.Sprintf("move %q is repeated", e.Move)
	default:
		return e.Reason.String()
	}
}

// MoveSet is an ordered, immutable list of distinct move names. The position
// of a name is its move index.
type MoveSet struct {
	names []string
}

// ParseMoveSet validates names and returns the move set built from them.
// Names are compared case-sensitively.
func ParseMoveSet(names []string) (MoveSet, error) {
	if len(names) < MinMoves {
		return MoveSet{}, &ConfigError{Reason: TooFewMoves, Count: len(names)}
	}
	if len(names)%2 != 1 {
		return MoveSet{}, &ConfigError{Reason: EvenCount, Count: len(names)}
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return MoveSet{}, &ConfigError{Reason: DuplicateMove, Count: len(names), Move: name}
		}
		seen[name] = struct{}{}
	}

	return MoveSet{names: append([]string(nil), names...)}, nil
}

// MustParseMoveSet is like ParseMoveSet but panics on invalid input. Intended
// for tests and fixed move lists.
func MustParseMoveSet(names ...string) MoveSet {
	ms, err := ParseMoveSet(names)
	if err != nil {
		panic(err)
	}
	return ms
}

// Len returns the number of moves.
func (m MoveSet) Len() int { return len(m.names) }

// Name returns the move at index i.
func (m MoveSet) Name(i int) string { return m.names[i] }

// Names returns a copy of the move names in index order.
func (m MoveSet) Names() []string {
	return append([]string(nil), m.names...)
}

// Index returns the index of name, or -1 if it is not in the set.
func (m MoveSet) Index(name string) int {
	for i, n := range m.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Resolve reports how move a fares against move b.
func (m MoveSet) Resolve(a, b int) Outcome {
	return Resolve(a, b, len(m.names))
}

// Beats returns the indices that move i beats.
func (m MoveSet) Beats(i int) []int {
	return m.matching(i, Win)
}

// LosesTo returns the indices that beat move i.
func (m MoveSet) LosesTo(i int) []int {
	return m.matching(i, Lose)
}

func (m MoveSet) matching(i int, want Outcome) []int {
	var out []int
	for j := range m.names {
		if m.Resolve(i, j) == want {
			out = append(out, j)
		}
	}
	return out
}

func (m MoveSet) String() string {
	return strings.Join(m.names, ", ")
}
