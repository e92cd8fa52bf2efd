package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a position from the book" }
func (*deleteCmd) Usage() string {
	return `ral delete <identifier>

  Removes the position matching <identifier> from the book. The target
  declared for that identifier, if any, is kept: deleting a position does
  not change the allocation you aim for.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one <identifier> argument is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := b.DeletePosition(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting position: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted position %q from %s\n", id, *storeFile)
	return subcommands.ExitSuccess
}
