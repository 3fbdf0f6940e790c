package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/config"
	"github.com/lox/fairplay/internal/rules"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParsePlay(t *testing.T) {
	cli, ctx := parse(t, "play", "--commit-mode", "strict", "Rock", "Paper", "Scissors")

	assert.True(t, strings.HasPrefix(ctx.Command(), "play"))
	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, cli.Play.Moves)
	assert.Equal(t, "strict", cli.Play.CommitMode)
	assert.Equal(t, config.DefaultFile, cli.Config)
}

func TestParseVerify(t *testing.T) {
	cli, ctx := parse(t, "--no-color", "verify", "--key", "ab", "--distinguisher", "123", "A", "B", "C")

	assert.True(t, strings.HasPrefix(ctx.Command(), "verify"))
	assert.Equal(t, "ab", cli.Verify.Key)
	assert.Equal(t, "123", cli.Verify.Distinguisher)
	assert.True(t, cli.NoColor)
}

func TestParseSimulateDefaults(t *testing.T) {
	cli, _ := parse(t, "simulate", "A", "B", "C")

	assert.Equal(t, 10000, cli.Simulate.Rounds)
	assert.Equal(t, 0, cli.Simulate.Workers)
}

func TestMoveSetFallsBackToConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Moves = []string{"Rock", "Paper", "Scissors", "Lizard", "Spock"}

	moves, err := moveSet(nil, cfg, "play")
	require.NoError(t, err)
	assert.Equal(t, 5, moves.Len())

	moves, err = moveSet([]string{"A", "B", "C"}, cfg, "play")
	require.NoError(t, err)
	assert.Equal(t, "A", moves.Name(0))
}

func TestMoveSetRejectsInvalid(t *testing.T) {
	_, err := moveSet([]string{"A", "A", "B"}, config.Default(), "play")

	var cfgErr *rules.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, rules.DuplicateMove, cfgErr.Reason)
}

func TestParseMovesNamedLikeCommands(t *testing.T) {
	t.Run("bare move list plays", func(t *testing.T) {
		cli, ctx := parse(t, "Rock", "Paper", "Scissors")
		assert.True(t, strings.HasPrefix(ctx.Command(), "play"))
		assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, cli.Play.Moves)
	})

	t.Run("first move named like a command selects that command", func(t *testing.T) {
		cli, ctx := parse(t, "table", "Rock", "Paper")
		assert.True(t, strings.HasPrefix(ctx.Command(), "table"))
		assert.Equal(t, []string{"Rock", "Paper"}, cli.Table.Moves)
		assert.Empty(t, cli.Play.Moves)
	})

	t.Run("explicit play keeps the move", func(t *testing.T) {
		cli, ctx := parse(t, "play", "table", "Rock", "Paper")
		assert.True(t, strings.HasPrefix(ctx.Command(), "play"))
		assert.Equal(t, []string{"table", "Rock", "Paper"}, cli.Play.Moves)
	})
}

func TestPlayHelpMentionsExplicitPlay(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	for _, node := range parser.Model.Children {
		if node.Name == "play" {
			assert.Contains(t, node.Help, "fairplay play")
			return
		}
	}
	t.Fatal("play command not found")
}
