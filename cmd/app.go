// Package cmd implements the CLI application to manage a rebalancing book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "book")
	c.Register(&editCmd{}, "book")
	c.Register(&deleteCmd{}, "book")
	c.Register(&priceCmd{}, "book")
	c.Register(&targetCmd{}, "book")
	c.Register(&snapshotCmd{}, "book")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&rebalanceCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")

	c.Register(&exportCmd{}, "store")
	c.Register(&importCmd{}, "store")
	c.Register(&fmtCmd{}, "store")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("f", "book.jsonl", "Path to the book store file (JSONL format)")

// DecodeStore loads the book from the app store file.
func DecodeStore() (b *rebalance.Book, err error) {
	f, err := os.Open(*storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, store does not exist, starting from an empty book instead")
		return rebalance.NewBook(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rebalance.DecodeBook(f)
}

// EncodeStore writes the book back into the app store file.
func EncodeStore(b *rebalance.Book) error {
	f, err := os.Create(*storeFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return rebalance.EncodeBook(f, b)
}

// printMarkdown renders a markdown report on the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
