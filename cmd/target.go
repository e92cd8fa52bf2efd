package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

type targetCmd struct {
	weight string
	group  string
	name   string
	remove bool
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "declare, edit or remove a target allocation" }
func (*targetCmd) Usage() string {
	return `ral target -w <weight> [-g <group>] <ticker>
ral target -w <weight> [-g <group>] -name <name>
ral target -rm <identifier>

  Declares the desired weight, in percent of the total portfolio value, for
  an asset: a <ticker> argument for listed assets, or the -name flag for
  unlisted ones. A target may exist for an asset not held yet; it shows up
  in reports as a zero quantity row. Declaring a target for an identifier
  that already has one edits it in place.

  Declared weights should sum to at most 100; ral warns when they exceed it
  but keeps the declaration.

Usage Examples:
$ ral target -w 60 -g stocks AAPL
$ ral target -w 10 -name "Vintage Watch"
$ ral target -rm AAPL
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.weight, "w", "", "Desired weight in percent of the total portfolio value")
	f.StringVar(&c.group, "g", "", "Free-form asset group label (e.g. \"stocks\", \"bonds\")")
	f.StringVar(&c.name, "name", "", "Display name for an unlisted asset, used as its identifier")
	f.BoolVar(&c.remove, "rm", false, "Remove the target declared for the identifier")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker := f.Arg(0)
	if ticker == "" && c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: a <ticker> argument or the -name flag is required.")
		return subcommands.ExitUsageError
	}
	id := ticker
	if id == "" {
		id = c.name
	}

	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.remove {
		if err := b.DeleteTarget(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing target: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := EncodeStore(b); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed target %q from %s\n", id, *storeFile)
		return subcommands.ExitSuccess
	}

	if c.weight == "" {
		fmt.Fprintln(os.Stderr, "Error: the -w flag is required to declare a target.")
		return subcommands.ExitUsageError
	}
	w, err := strconv.ParseFloat(c.weight, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing weight: %v\n", err)
		return subcommands.ExitUsageError
	}

	t := rebalance.NewTarget(ticker, c.name, rebalance.Percent(w), c.group)
	if prev, err := b.Target(id); err == nil {
		name, group := prev.Name(), prev.Group()
		if c.name != "" {
			name = c.name
		}
		if c.group != "" {
			group = c.group
		}
		t = rebalance.NewTarget(prev.Ticker(), name, rebalance.Percent(w), group)
		if err := b.UpdateTarget(id, t); err != nil {
			fmt.Fprintf(os.Stderr, "Error editing target: %v\n", err)
			return subcommands.ExitFailure
		}
	} else if err := b.AddTarget(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error declaring target: %v\n", err)
		return subcommands.ExitFailure
	}

	var total rebalance.Percent
	for _, t := range b.Targets() {
		total += t.Weight()
	}
	if total > 100 {
		fmt.Fprintf(os.Stderr, "Warning: declared targets sum to %s, over 100%%.\n", total)
	}

	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared target %q at %s in %s\n", id, t.Weight(), *storeFile)
	return subcommands.ExitSuccess
}
