package main

import (
	"fmt"

	"github.com/lox/fairplay/internal/helptable"
)

type TableCmd struct {
	Moves []string `arg:"" optional:"" help:"Move names: an odd number (>=3) of distinct strings"`
}

func (c *TableCmd) Run(g *Globals) error {
	cfg, _, closer, styles, err := g.setup()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	moves, err := moveSet(c.Moves, cfg, "table")
	if err != nil {
		return err
	}

	fmt.Println(helptable.Render(helptable.Build(moves), styles.Table))
	return nil
}
