package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show the version"`

	Rank        RankCmd        `cmd:"" help:"Rank a three-card hand against every possible hand"`
	Deal        DealCmd        `cmd:"" help:"Deal random hands and rank them"`
	Deck        DeckCmd        `cmd:"" help:"Print the deck grouped by suit"`
	Demo        DemoCmd        `cmd:"" help:"Rank a set of sample hands"`
	Interactive InteractiveCmd `cmd:"" default:"1" hidden:"" help:"Read hands from stdin"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("teenpatti"),
		kong.Description("Rank three-card Teen Patti hands against all 22,100 possible hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
