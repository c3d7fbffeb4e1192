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

type balanceCmd struct {
	id     string
	secret string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the balance of an account, for a fee" }
func (*balanceCmd) Usage() string {
	return `atm balance -id <identifier> -secret <secret>

  Charges the inquiry fee on the account and prints its new balance.
  A balance lower than the fee drops to zero.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account identifier")
	f.StringVar(&c.secret, "secret", "", "Account secret")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.secret == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -secret are required.")
		return subcommands.ExitUsageError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Login(c.id, c.secret); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeSession(s)
		return subcommands.ExitFailure
	}

	out, err := s.InquireBalance(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeSession(s)
		return subcommands.ExitFailure
	}
	if status := closeSession(s); status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.RenderReceipt(renderer.InquiryReceipt(s.ID.String(), c.id, out)))
	if out.Status != teller.Found {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
