package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore the book from a JSON backup" }
func (*importCmd) Usage() string {
	return `ral import [<file>]

  Reads a JSON document produced by 'ral export -format json' (from <file>
  or stdin) and replaces the book store with it. Derived values in the
  document are ignored and recomputed.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening backup: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	b, err := rebalance.ImportJSON(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing book: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d positions and %d targets into %s\n", len(b.Positions()), len(b.Targets()), *storeFile)
	return subcommands.ExitSuccess
}
