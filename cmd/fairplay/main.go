package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play against the computer (default command; use 'fairplay play ...' if the first move is named table, verify or simulate)"`
	Table    TableCmd         `cmd:"" help:"Print the outcome table for a move list"`
	Verify   VerifyCmd        `cmd:"" help:"Recompute a revealed round from its key"`
	Simulate SimulateCmd      `cmd:"" help:"Play many automated rounds and report the move distribution"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fairplay"),
		kong.Description("Provably fair N-way rock-paper-scissors"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
