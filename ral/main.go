// Command ral tracks a manually entered portfolio and suggests the trades
// that bring it back toward a target allocation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers the bash/zsh completion tree. It returns immediately
// when the process is not invoked by the shell completion machinery.
func completion() {
	store := predict.Files("*.jsonl")
	windows := predict.Set{"1m", "3m", "1y", "all"}
	formats := predict.Set{"json", "csv"}

	c := &complete.Command{
		Flags: map[string]complete.Predictor{"f": store},
		Sub: map[string]*complete.Command{
			"add":        {Flags: map[string]complete.Predictor{"ticker": predict.Nothing, "name": predict.Nothing, "q": predict.Nothing, "avg": predict.Nothing, "p": predict.Nothing}},
			"edit":       {Flags: map[string]complete.Predictor{"ticker": predict.Nothing, "name": predict.Nothing, "q": predict.Nothing, "avg": predict.Nothing, "p": predict.Nothing}},
			"delete":     {},
			"price":      {Flags: map[string]complete.Predictor{"file": predict.Files("*.json"), "path": predict.Nothing}},
			"target":     {Flags: map[string]complete.Predictor{"w": predict.Nothing, "g": predict.Nothing, "name": predict.Nothing, "rm": predict.Nothing}},
			"snapshot":   {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"holdings":   {},
			"allocation": {},
			"rebalance":  {Flags: map[string]complete.Predictor{"t": predict.Nothing, "min": predict.Nothing}},
			"perf":       {Flags: map[string]complete.Predictor{"w": windows}},
			"export":     {Flags: map[string]complete.Predictor{"format": formats, "o": predict.Files("*")}},
			"import":     {Args: predict.Files("*.json")},
			"fmt":        {},
			"topic":      {Args: predict.Set{"readme", "allocation", "rebalancing", "performance", "store", "all"}},
		},
	}
	c.Complete("ral")
}
