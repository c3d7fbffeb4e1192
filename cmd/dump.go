package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/teller/renderer"
)

type dumpCmd struct {
	admins bool
}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "list the decoded accounts, without secrets" }
func (*dumpCmd) Usage() string {
	return `atm dump [-admins]

  Decodes the users ledger (or the admins ledger with -admins) and lists
  every line with its index. Secrets are never printed.
`
}

func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.admins, "admins", false, "List the admins ledger instead of the users ledger")
}

func (c *dumpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	l := s.Users
	if c.admins {
		l = s.Admins
	}
	list := renderer.NewListing(l)
	if status := closeSession(s); status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.RenderListing(list))
	return subcommands.ExitSuccess
}
