package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `ral topic [<topic>]

  Shows the documentation for a given topic, or the manual's table of
  contents when no topic is given. Use 'ral topic all' for the whole
  manual.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topic := f.Arg(0)
	var doc string
	var err error
	switch topic {
	case "":
		doc, err = docs.Get("readme")
	case "all":
		doc, err = docs.Merged()
	default:
		doc, err = docs.Get(topic)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
