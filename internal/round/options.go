package round

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fairplay/internal/commit"
)

// CommitMode selects what the "HMAC:" line shows before the human moves.
type CommitMode int

const (
	// ModePreview shows an independently generated preview key. It commits to
	// nothing; the revealed key is the only evidence.
	ModePreview CommitMode = iota
	// ModeStrict shows the SHA3 commitment digest of the pending round and
	// reveals the distinguisher with the key so the round can be verified.
	ModeStrict
)

func (m CommitMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	default:
		return "preview"
	}
}

// ParseCommitMode parses "preview" or "strict".
func ParseCommitMode(s string) (CommitMode, error) {
	switch s {
	case "", "preview":
		return ModePreview, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModePreview, fmt.Errorf("unknown commit mode %q (want preview or strict)", s)
	}
}

// Option configures a Protocol.
type Option func(*config)

type config struct {
	keys   commit.KeySource
	eval   commit.Evaluator
	clock  quartz.Clock
	mode   CommitMode
	logger *log.Logger
}

// WithKeySource replaces the crypto/rand key source.
func WithKeySource(keys commit.KeySource) Option {
	return func(c *config) { c.keys = keys }
}

// WithEvaluator replaces the HMAC-SHA256 move evaluator.
func WithEvaluator(eval commit.Evaluator) Option {
	return func(c *config) { c.eval = eval }
}

// WithClock sets the clock the distinguisher is read from.
func WithClock(clock quartz.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithCommitMode sets what is shown before the human moves.
func WithCommitMode(mode CommitMode) Option {
	return func(c *config) { c.mode = mode }
}

// WithLogger sets the logger. Rounds are logged at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func defaultConfig() config {
	return config{
		keys:   commit.NewCryptoKeySource(),
		eval:   commit.HMACEvaluator{},
		clock:  quartz.NewReal(),
		mode:   ModePreview,
		logger: log.New(io.Discard),
	}
}
