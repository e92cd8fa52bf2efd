package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

type priceCmd struct {
	file string
	path string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "update the current price of a position" }
func (*priceCmd) Usage() string {
	return `ral price <identifier> <price>
ral price -file <quotes.json> [-path <jsonpath>] <identifier>

  Updates the current price of the position matching <identifier> and
  recomputes its valuation. The price is given on the command line, or
  extracted from a local JSON document with a JSONPath expression
  (default "$.price").

Usage Examples:
$ ral price AAPL 172.5
$ ral price -file quotes.json -path '$.quotes.AAPL.last' AAPL
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON document to extract the price from")
	f.StringVar(&c.path, "path", "$.price", "JSONPath expression locating the price in the document")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: an <identifier> argument is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := b.Settings().Currency

	var price rebalance.Money
	switch {
	case c.file != "":
		doc, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening quote document: %v\n", err)
			return subcommands.ExitFailure
		}
		defer doc.Close()
		v, err := rebalance.DecodeQuote(doc, c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting quote: %v\n", err)
			return subcommands.ExitFailure
		}
		price = rebalance.M(v, currency)
	case f.NArg() == 2:
		price, err = parseMoney(f.Arg(1), currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: either a <price> argument or the -file flag is required.")
		return subcommands.ExitUsageError
	}

	if err := b.SetPrice(id, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting price: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Priced %q at %s\n", id, price)
	return subcommands.ExitSuccess
}
