package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/date"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

type perfCmd struct {
	window string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "analyze performance over the snapshot history" }
func (*perfCmd) Usage() string {
	return `ral perf [-w <window>]

  Computes return, annualized return, volatility, Sharpe ratio and max
  drawdown over the snapshots recorded in the given window (1m, 3m, 1y or
  all). Take snapshots with 'ral snapshot' to build the history.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", "all", "Analysis window: 1m, 3m, 1y or all")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := rebalance.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	m := rebalance.Analyze(b.Series(), w, date.Today())
	printMarkdown(renderer.PerformanceMarkdown(w, m))
	return subcommands.ExitSuccess
}
