package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

type rebalanceCmd struct {
	threshold float64
	minAmount float64
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "suggest the trades that restore the target allocation" }
func (*rebalanceCmd) Usage() string {
	return `ral rebalance [-t <threshold>] [-min <amount>]

  Compares current weights against target weights and suggests a buy or a
  sell for every target that drifted by at least the threshold, largest
  drift first. The optional -min flag drops trades below a monetary amount.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.threshold, "t", float64(rebalance.DefaultThreshold), "Drift threshold in percentage points")
	f.Float64Var(&c.minAmount, "min", 0, "Drop suggestions below this amount, in the book currency")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	opts := rebalance.SuggestOptions{
		Threshold: rebalance.Percent(c.threshold),
		MinAmount: rebalance.M(c.minAmount, b.Settings().Currency),
	}
	printMarkdown(renderer.SuggestionsMarkdown(b.Suggest(opts), opts.Threshold))
	return subcommands.ExitSuccess
}
