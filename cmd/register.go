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

type registerCmd struct {
	admin       string
	adminSecret string
	id          string
	secret      string
	name        string
	balance     string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new account (administrators only)" }
func (*registerCmd) Usage() string {
	return `atm register -admin <identifier> -admin-secret <secret> -id <identifier> -secret <secret> -name <name> [-balance <amount>]

  Authenticates the administrator against the admins ledger, then appends
  a new account at the end of the users ledger.

  See 'atm topic registration' for the rules every field must follow.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.admin, "admin", "", "Administrator identifier")
	f.StringVar(&c.adminSecret, "admin-secret", "", "Administrator secret")
	f.StringVar(&c.id, "id", "", "New account identifier")
	f.StringVar(&c.secret, "secret", "", "New account secret")
	f.StringVar(&c.name, "name", "", "New account display name")
	f.StringVar(&c.balance, "balance", "0", "Opening balance, in whole currency units")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.admin == "" || c.adminSecret == "" {
		fmt.Fprintln(os.Stderr, "Error: -admin and -admin-secret are required.")
		return subcommands.ExitUsageError
	}
	balance, err := teller.ParseAmount(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}
	r := teller.Registration{ID: c.id, Secret: c.secret, Name: c.name, Balance: balance}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	rec, err := s.Register(c.admin, c.adminSecret, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeSession(s)
		return subcommands.ExitFailure
	}
	line := s.Users.Len() - 1
	if status := closeSession(s); status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.RenderRegistered(renderer.NewRegistered(rec, line)))
	return subcommands.ExitSuccess
}
