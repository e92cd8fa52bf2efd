package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display current weights next to target weights" }
func (*allocationCmd) Usage() string {
	return `ral allocation

  Displays the current weight of every asset next to its declared target
  weight. Positions without a target read "unallocated"; targets without a
  position show as zero quantity rows.
`
}

func (*allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(b.Positions(), b.Targets()))
	return subcommands.ExitSuccess
}
