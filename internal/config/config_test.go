package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fairplay.hcl")
	src := `
game {
  moves       = ["Rock", "Paper", "Scissors", "Lizard", "Spock"]
  commit_mode = "strict"
}

ui {
  log_level = "debug"
  no_color  = true
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}, cfg.Game.Moves)
	assert.Equal(t, "strict", cfg.Game.CommitMode)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.NoColor)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`game { moves = ["a", "b", "c"] }`), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, "preview", cfg.Game.CommitMode)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.False(t, cfg.UI.NoColor)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `game {`},
		{"unknown attribute", `game { rounds = 3 }`},
		{"wrong type", `game { moves = "Rock" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Game.CommitMode = "lenient"
	assert.ErrorContains(t, cfg.Validate(), "commit mode")

	cfg = Default()
	cfg.UI.LogLevel = "chatty"
	assert.ErrorContains(t, cfg.Validate(), "log level")
}

func TestNewLogger(t *testing.T) {
	t.Run("fallback writer", func(t *testing.T) {
		cfg := Default()
		cfg.UI.LogLevel = "info"

		var buf bytes.Buffer
		logger, closer, err := cfg.NewLogger(&buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("hello", "round", 1)
		logger.Debug("hidden")
		assert.Contains(t, buf.String(), "hello")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Equal(t, log.InfoLevel, logger.GetLevel())
	})

	t.Run("log file", func(t *testing.T) {
		cfg := Default()
		cfg.UI.LogFile = filepath.Join(t.TempDir(), "fairplay.log")

		logger, closer, err := cfg.NewLogger(nil)
		require.NoError(t, err)
		logger.Warn("written to file")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(cfg.UI.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "written to file")
	})
}

func TestParseDocumentedSample(t *testing.T) {
	src := `
game {
  moves       = ["Rock", "Paper", "Scissors"]
  commit_mode = "preview"
}
ui {
  log_level = "warn"
  log_file  = ""
  no_color  = false
  tui       = false
}
`
	cfg, err := Parse([]byte(src), "fairplay.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, cfg.Game.Moves)
	assert.Equal(t, "preview", cfg.Game.CommitMode)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.False(t, cfg.UI.NoColor)
	assert.False(t, cfg.UI.TUI)
}

func TestParseRejectsUnknownUISetting(t *testing.T) {
	_, err := Parse([]byte(`ui { color = true }`), "fairplay.hcl")
	assert.ErrorContains(t, err, "color")
}
