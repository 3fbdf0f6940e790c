package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/fairplay/internal/config"
	"github.com/lox/fairplay/internal/rules"
	"github.com/lox/fairplay/internal/session"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"fairplay.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
	NoColor  bool   `help:"Disable colored output"`
}

// load reads the config file and applies command line overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads configuration and builds the logger and output styles.
func (g *Globals) setup() (*config.Config, *log.Logger, io.Closer, session.Styles, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, nil, nil, session.Styles{}, err
	}

	logger, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, nil, nil, session.Styles{}, err
	}

	styles := session.DefaultStyles()
	if cfg.UI.NoColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		styles = session.PlainStyles()
	}

	logger.Debug("Configuration loaded", "config", g.Config, "log_level", cfg.UI.LogLevel, "commit_mode", cfg.Game.CommitMode)
	return cfg, logger, closer, styles, nil
}

// moveSet validates the move list from the command line, falling back to the
// configured moves. An invalid list is reported with a usage example.
func moveSet(args []string, cfg *config.Config, command string) (rules.MoveSet, error) {
	names := args
	if len(names) == 0 {
		names = cfg.Game.Moves
	}

	moves, err := rules.ParseMoveSet(names)
	var cfgErr *rules.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintln(os.Stderr, "Error: Invalid input!")
		fmt.Fprintln(os.Stderr, "Please provide an odd number (>=3) of non-repeating strings as moves.")
		fmt.Fprintf(os.Stderr, "Example: fairplay %s Rock Paper Scissors\n", command)
	}
	return moves, err
}
