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

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the book for backup or analysis" }
func (*exportCmd) Usage() string {
	return `ral export [-format json|csv] [-o <file>]

  Exports the book to stdout (or -o <file>):
  - json: a single indented document holding the whole book, suitable for
    backup and for 'ral import'.
  - csv: the snapshot history flattened to one row per date and position,
    with target weight and group joined in, suitable for spreadsheets.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Export format: json or csv")
	f.StringVar(&c.output, "o", "", "Write to a file instead of stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	switch c.format {
	case "json":
		err = rebalance.ExportJSON(w, b)
	case "csv":
		err = rebalance.ExportCSV(w, b)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want json or csv.\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
