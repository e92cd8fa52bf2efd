package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/date"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	date string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record the portfolio state into the history" }
func (*snapshotCmd) Usage() string {
	return `ral snapshot [-d <date>]

  Captures the current positions and totals as of a date (today by default)
  into the snapshot history used by 'ral perf'. A snapshot already recorded
  on the same date is replaced.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the snapshot (YYYY-MM-DD)")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := b.TakeSnapshot(on)
	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded snapshot on %s: total value %s\n", snap.On(), snap.Totals().TotalValue)
	return subcommands.ExitSuccess
}
