package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/teller/docs"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the teller manual" }
func (*topicCmd) Usage() string {
	return `atm topic [-list] [<topic>...]

  Prints the manual pages of the teller: the ledger format, the encryption at
  rest, the operations and their fee, the registration rules.
  Without a topic it prints the readme, with '*' every page.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the topic names only")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	available, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing the manual: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		fmt.Fprintln(stdout, strings.Join(available, "\n"))
		return subcommands.ExitSuccess
	}

	pages := f.Args()
	if len(pages) == 0 {
		pages = []string{"readme"}
	}
	manual, err := docs.GetTopics(pages...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nAvailable topics: %s\n", err, strings.Join(available, ", "))
		return subcommands.ExitUsageError
	}
	printMarkdown(manual)
	return subcommands.ExitSuccess
}
