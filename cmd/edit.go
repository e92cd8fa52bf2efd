package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

type editCmd struct {
	ticker   string
	name     string
	quantity string
	avgPrice string
	price    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing position" }
func (*editCmd) Usage() string {
	return `ral edit [-ticker <ticker>] [-name <name>] [-q <quantity>] [-avg <avg_price>] [-p <price>] <identifier>

  Edits the position matching <identifier>. Only the given flags change, the
  rest of the position is kept. Changing the ticker (or the name of an
  unlisted asset) changes the identifier the position resolves to; the edit
  is rejected if the new identifier collides with another position.

Usage Examples:
$ ral edit -q 12 AAPL
$ ral edit -ticker 005930.KS "Samsung Electronics"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "New ticker symbol")
	f.StringVar(&c.name, "name", "", "New display name")
	f.StringVar(&c.quantity, "q", "", "New number of units held")
	f.StringVar(&c.avgPrice, "avg", "", "New average acquisition price per unit")
	f.StringVar(&c.price, "p", "", "New current price per unit")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	current, err := b.Position(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ticker, name := current.Ticker(), current.Name()
	quantity, avg, price := current.Quantity(), current.AvgPrice(), current.Price()
	if c.ticker != "" {
		ticker = c.ticker
	}
	if c.name != "" {
		name = c.name
	}
	if c.quantity != "" {
		if quantity, err = parseQuantity(c.quantity); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	currency := b.Settings().Currency
	if c.avgPrice != "" {
		if avg, err = parseMoney(c.avgPrice, currency); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing average price: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.price != "" {
		if price, err = parseMoney(c.price, currency); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := b.UpdatePosition(id, rebalance.NewPosition(ticker, name, quantity, avg, price)); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing position: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited position %q in %s\n", id, *storeFile)
	return subcommands.ExitSuccess
}
