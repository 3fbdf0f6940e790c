// Package round implements one game round as an explicit state machine:
// commit to the computer's move, take the human's input, reveal and resolve.
package round

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/fairplay/internal/commit"
	"github.com/lox/fairplay/internal/helptable"
	"github.com/lox/fairplay/internal/rules"
)

// Reserved inputs.
const (
	ExitInput = "0"
	HelpInput = "?"
)

var (
	// ErrSessionEnded is returned by Handle once the human has exited.
	ErrSessionEnded = errors.New("session ended")
	// ErrNoPendingRound is returned by Handle before Begin has committed a round.
	ErrNoPendingRound = errors.New("no round in progress")
)

// State is the protocol's position in a round.
type State int

const (
	// Resolved means no commitment is pending; Begin must be called.
	Resolved State = iota
	AwaitingInput
	SessionEnded
)

func (s State) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case AwaitingInput:
		return "awaiting-input"
	case SessionEnded:
		return "session-ended"
	default:
		return "unknown"
	}
}

// Kind classifies the result of handling one input line.
type Kind int

const (
	KindPlayed Kind = iota
	KindHelp
	KindInvalid
	KindExit
)

// Preview is what the human sees before choosing: the "HMAC:" value.
type Preview struct {
	Round int
	Value string
}

// Played is a resolved round, including everything needed to verify it.
type Played struct {
	Round         int
	UserIndex     int
	UserMove      string
	ComputerIndex int
	ComputerMove  string
	Outcome       rules.Outcome
	Key           commit.Key
	Distinguisher commit.Distinguisher
	Digest        string
}

// Result is the outcome of Protocol.Handle.
type Result struct {
	Kind   Kind
	Played *Played    // KindPlayed
	Help   [][]string // KindHelp
	Next   *Preview   // KindPlayed: the following round's preview
}

// Protocol runs rounds for one session. It is not safe for concurrent use.
type Protocol struct {
	moves rules.MoveSet
	cfg   config

	state   State
	round   int
	pending commit.Commitment
	preview Preview
	logger  *log.Logger
}

// New creates a protocol for moves. Call Begin to commit the first round.
func New(moves rules.MoveSet, opts ...Option) *Protocol {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Protocol{
		moves:  moves,
		cfg:    cfg,
		state:  Resolved,
		logger: cfg.logger.WithPrefix("round"),
	}
}

// Moves returns the session's move set.
func (p *Protocol) Moves() rules.MoveSet { return p.moves }

// Mode returns the commit mode.
func (p *Protocol) Mode() CommitMode { return p.cfg.mode }

// State returns the current state.
func (p *Protocol) State() State { return p.state }

// Pending returns the commitment for the round awaiting input. It is only
// meaningful in AwaitingInput.
func (p *Protocol) Pending() commit.Commitment { return p.pending }

// Preview returns the preview of the round awaiting input.
func (p *Protocol) Preview() Preview { return p.preview }

// Begin commits a new round: it generates a key, captures the distinguisher
// from the clock and evaluates the computer's move. The returned preview is
// safe to show before the human chooses.
func (p *Protocol) Begin() (Preview, error) {
	if p.state == SessionEnded {
		return Preview{}, ErrSessionEnded
	}

	d := commit.DistinguisherAt(p.cfg.clock.Now())
	c, err := commit.Commit(p.cfg.keys, p.cfg.eval, p.moves, d)
	if err != nil {
		return Preview{}, fmt.Errorf("committing round %d: %w", p.round+1, err)
	}

	var shown string
	switch p.cfg.mode {
	case ModeStrict:
		shown = c.Digest()
	default:
		previewKey, err := p.cfg.keys.GenerateKey()
		if err != nil {
			return Preview{}, fmt.Errorf("generating preview key: %w", err)
		}
		shown = previewKey.String()
	}

	p.round++
	p.pending = c
	p.preview = Preview{Round: p.round, Value: shown}
	p.state = AwaitingInput

	p.logger.Debug("Round committed", "round", p.round, "mode", p.cfg.mode, "distinguisher", d)
	return p.preview, nil
}

// Handle processes one line of human input for the pending round.
//
// Only environment errors (the key source failing while committing the next
// round) and misuse of the state machine are returned as errors; bad input
// yields KindInvalid.
func (p *Protocol) Handle(input string) (Result, error) {
	switch p.state {
	case SessionEnded:
		return Result{}, ErrSessionEnded
	case Resolved:
		return Result{}, ErrNoPendingRound
	}

	input = strings.TrimSpace(input)

	switch input {
	case ExitInput:
		p.state = SessionEnded
		p.logger.Debug("Session ended", "rounds_played", p.round-1)
		return Result{Kind: KindExit}, nil
	case HelpInput:
		return Result{Kind: KindHelp, Help: helptable.Build(p.moves)}, nil
	}

	choice, ok := p.parseChoice(input)
	if !ok {
		p.logger.Debug("Invalid choice", "round", p.round, "input", input)
		return Result{Kind: KindInvalid}, nil
	}

	played := p.resolve(choice)
	p.state = Resolved

	next, err := p.Begin()
	if err != nil {
		return Result{Kind: KindPlayed, Played: played}, err
	}
	return Result{Kind: KindPlayed, Played: played, Next: &next}, nil
}

// parseChoice maps "1".."n" to a move index.
func (p *Protocol) parseChoice(input string) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > p.moves.Len() {
		return 0, false
	}
	return n - 1, true
}

func (p *Protocol) resolve(userIndex int) *Played {
	c := p.pending
	outcome := p.moves.Resolve(userIndex, c.MoveIndex)

	p.logger.Info("Round resolved",
		"round", p.round,
		"user", p.moves.Name(userIndex),
		"computer", c.Move,
		"outcome", outcome)

	return &Played{
		Round:         p.round,
		UserIndex:     userIndex,
		UserMove:      p.moves.Name(userIndex),
		ComputerIndex: c.MoveIndex,
		ComputerMove:  c.Move,
		Outcome:       outcome,
		Key:           c.Key,
		Distinguisher: c.Distinguisher,
		Digest:        c.Digest(),
	}
}
