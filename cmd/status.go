package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/teller"
	"github.com/etnz/teller/renderer"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show whether the ledger files are obfuscated" }
func (*statusCmd) Usage() string {
	return `atm status

  Reads both ledger files without modifying them and reports their size and
  whether they are obfuscated.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	users, err := teller.LoadLedger(*usersFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading users: %v\n", err)
		return subcommands.ExitFailure
	}
	admins, err := teller.LoadLedger(*adminsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading admins: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderStatus(renderer.NewStatus(users, admins, *usersFile, *adminsFile)))
	return subcommands.ExitSuccess
}
