// Package config loads fairplay settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "fairplay.hcl"

// Config represents the complete configuration.
type Config struct {
	Game GameSettings
	UI   UISettings
}

// GameSettings contains game settings.
type GameSettings struct {
	Moves      []string `hcl:"moves,optional"`
	CommitMode string   `hcl:"commit_mode,optional"`
}

// UISettings contains terminal and logging settings.
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
	TUI      bool   `hcl:"tui,optional"`
}

// fileConfig mirrors Config with optional blocks.
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			CommitMode: "preview",
		},
		UI: UISettings{
			LogLevel: "warn",
		},
	}
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes configuration from src; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if fc.Game != nil {
		cfg.Game = *fc.Game
	}
	if fc.UI != nil {
		cfg.UI = *fc.UI
	}

	// Apply defaults for missing values
	defaults := Default()
	if cfg.Game.CommitMode == "" {
		cfg.Game.CommitMode = defaults.Game.CommitMode
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}

	return cfg, nil
}

// Validate checks settings that can be checked without the move list; the
// move list itself is validated by rules.ParseMoveSet.
func (c *Config) Validate() error {
	switch c.Game.CommitMode {
	case "preview", "strict":
	default:
		return fmt.Errorf("invalid commit mode: %s", c.Game.CommitMode)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the logger described by the UI settings, writing to the
// log file if one is set and to fallback otherwise. The returned closer
// releases the log file.
func (c *Config) NewLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	out := fallback
	var closer io.Closer = nopCloser{}
	if c.UI.LogFile != "" {
		f, err := os.OpenFile(c.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return logger, closer, nil
}
