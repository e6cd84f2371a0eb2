package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command. None are needed to play.
type Globals struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to an HCL config file" type:"path"`
	Seed    int64            `help:"Seed for deterministic targets (0 picks one at random)"`
	LogFile string           `help:"Write a debug log to this file" type:"path"`
	Debug   bool             `help:"Log at debug level"`
	NoColor bool             `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Play PlayCmd `cmd:"" default:"1" help:"Play in the terminal with plain prompts"`
	TUI  TUICmd  `cmd:"" name:"tui" help:"Play in a full-screen terminal UI"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("numberguess"),
		kong.Description("Guess the secret number between 0 and 100"),
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
