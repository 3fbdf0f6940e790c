package main

import (
	"context"
	"errors"
	"os"

	"github.com/lox/fairplay/internal/round"
	"github.com/lox/fairplay/internal/session"
	"github.com/lox/fairplay/internal/tui"
)

// PlayCmd is the default command, so "fairplay Rock Paper Scissors" plays.
// A first move named like another command is taken as that command; write
// "fairplay play ..." to avoid it.
type PlayCmd struct {
	Moves      []string `arg:"" optional:"" help:"Move names: an odd number (>=3) of distinct strings"`
	CommitMode string   `help:"What to show before each move: preview or strict (overrides config)"`
	TUI        bool     `help:"Run in a full-screen terminal UI"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, closer, styles, err := g.setup()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	moves, err := moveSet(c.Moves, cfg, "play")
	if err != nil {
		return err
	}

	modeName := cfg.Game.CommitMode
	if c.CommitMode != "" {
		modeName = c.CommitMode
	}
	mode, err := round.ParseCommitMode(modeName)
	if err != nil {
		return err
	}

	protocol := round.New(moves,
		round.WithCommitMode(mode),
		round.WithLogger(logger),
	)

	ctx, cancel := signalContext(logger)
	defer cancel()

	if c.TUI || cfg.UI.TUI {
		err = tui.Run(ctx, protocol, styles, os.Stdout, logger)
	} else {
		input := session.NewLineReader(os.Stdin)
		defer func() { _ = input.Close() }()

		s := session.New(protocol, input, session.NewPrinter(os.Stdout, styles), logger)
		err = s.Run(ctx)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
