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

type withdrawCmd struct {
	id     string
	secret string
	amount string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash from an account, for a fee" }
func (*withdrawCmd) Usage() string {
	return `atm withdraw -id <identifier> -secret <secret> -amount <amount>

  Takes the amount plus the withdrawal fee from the account.
  The withdrawal is refused, and the account left untouched, if the balance
  does not cover both.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account identifier")
	f.StringVar(&c.secret, "secret", "", "Account secret")
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw, in whole currency units")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.secret == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -id, -secret and -amount are required.")
		return subcommands.ExitUsageError
	}
	amount, err := teller.ParseAmount(c.amount)
	if err != nil || amount == 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q, it must be a positive whole number.\n", c.amount)
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

	out, err := s.Withdraw(c.id, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeSession(s)
		return subcommands.ExitFailure
	}
	if status := closeSession(s); status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.RenderReceipt(renderer.WithdrawalReceipt(s.ID.String(), c.id, out)))
	if out.Status != teller.Accepted {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
