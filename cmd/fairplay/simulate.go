package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lox/fairplay/internal/rules"
	"github.com/lox/fairplay/internal/simulator"
)

type SimulateCmd struct {
	Rounds  int      `default:"10000" help:"Number of rounds to play"`
	Workers int      `default:"0" help:"Parallel workers (0 for one per CPU)"`
	Seed    int64    `default:"0" help:"Seed for the simulated player's moves (0 for time-based)"`
	Moves   []string `arg:"" optional:"" help:"Move names: an odd number (>=3) of distinct strings"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, closer, _, err := g.setup()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	moves, err := moveSet(c.Moves, cfg, "simulate")
	if err != nil {
		return err
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	start := time.Now()
	report, err := simulator.Run(ctx, simulator.Config{
		Moves:   moves,
		Rounds:  c.Rounds,
		Workers: workers,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	printReport(moves, report, time.Since(start))
	return nil
}

func printReport(moves rules.MoveSet, r simulator.Report, elapsed time.Duration) {
	fmt.Printf("Simulated %d rounds in %s\n\n", r.Rounds, elapsed.Round(time.Millisecond))
	fmt.Println("Computer moves:")
	for i := 0; i < moves.Len(); i++ {
		pct := 100 * float64(r.ComputerCounts[i]) / float64(r.Rounds)
		fmt.Printf("  %-12s %8d  %5.1f%%\n", moves.Name(i), r.ComputerCounts[i], pct)
	}
	fmt.Println()
	for _, o := range []rules.Outcome{rules.Win, rules.Lose, rules.Draw} {
		pct := 100 * float64(r.Outcomes[o]) / float64(r.Rounds)
		fmt.Printf("Player %-5s %8d  %5.1f%%\n", o.String()+":", r.Outcomes[o], pct)
	}
	fmt.Printf("\nChi-square vs uniform: %.2f (%d degrees of freedom)\n", r.ChiSquare, moves.Len()-1)
}
