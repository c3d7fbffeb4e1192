package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sealCmd struct{}

func (*sealCmd) Name() string     { return "seal" }
func (*sealCmd) Synopsis() string { return "obfuscate plain ledger files" }
func (*sealCmd) Usage() string {
	return `atm seal

  Opens and closes both ledgers without any operation, leaving them
  obfuscated on disk. Files already obfuscated are rewritten unchanged.
`
}

func (c *sealCmd) SetFlags(f *flag.FlagSet) {}

func (c *sealCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := closeSession(s); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(stdout, "Ledgers %s and %s are sealed.\n", *usersFile, *adminsFile)
	return subcommands.ExitSuccess
}
