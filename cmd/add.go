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

type addCmd struct {
	ticker   string
	name     string
	quantity string
	avgPrice string
	price    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new position to the book" }
func (*addCmd) Usage() string {
	return `ral add [-ticker <ticker>] [-name <name>] -q <quantity> -avg <avg_price> -p <price>

  Adds a new position to the book:
  - ticker: the ticker symbol (e.g. "AAPL"). Optional for unlisted assets.
  - name: a display name (e.g. "Samsung Electronics"). Required when there is no ticker.
  - q: the number of units held.
  - avg: the average acquisition price per unit.
  - p: the current price per unit.

  The position is identified by its uppercased ticker, or by its name when
  it has no ticker. Identifiers must be unique in the book.

Usage Examples:
$ ral add -ticker aapl -q 10 -avg 150 -p 170
$ ral add -name "Samsung Electronics" -q 5 -avg 60000 -p 66000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol, uppercased on resolution")
	f.StringVar(&c.name, "name", "", "Display name, used as identifier when there is no ticker")
	f.StringVar(&c.quantity, "q", "", "Number of units held (required)")
	f.StringVar(&c.avgPrice, "avg", "", "Average acquisition price per unit (required)")
	f.StringVar(&c.price, "p", "", "Current price per unit (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" && c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of -ticker or -name is required.")
		return subcommands.ExitUsageError
	}
	quantity, err := parseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	currency := b.Settings().Currency
	avg, err := parseMoney(c.avgPrice, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing average price: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := parseMoney(c.price, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	p := rebalance.NewPosition(c.ticker, c.name, quantity, avg, price)
	if err := b.AddPosition(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding position: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeStore(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added position %q to %s\n", rebalance.Identify(p), *storeFile)
	return subcommands.ExitSuccess
}

// parseQuantity parses a decimal amount of units from a flag value.
func parseQuantity(s string) (rebalance.Quantity, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return rebalance.Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return rebalance.Q(v), nil
}

// parseMoney parses a monetary flag value in the book's reporting currency.
func parseMoney(s, currency string) (rebalance.Money, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return rebalance.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return rebalance.M(v, currency), nil
}
