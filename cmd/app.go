// Package cmd implements the CLI application of the teller.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/teller"
	"github.com/etnz/teller/logger"
)

const (
	EnvUsersFile  = "TELLER_USERS_FILE"
	EnvAdminsFile = "TELLER_ADMINS_FILE"
	EnvSeed       = "TELLER_SEED"
	EnvLogEnv     = "TELLER_ENV"
	EnvLogLevel   = "TELLER_LOG_LEVEL"
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&balanceCmd{},
	&withdrawCmd{},
	&registerCmd{},
	&statusCmd{},
	&sealCmd{},
	&dumpCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	usersFile  = flag.String("users", envOr(EnvUsersFile, "usuarios.bin"), "Path to the users ledger file")
	adminsFile = flag.String("admins", envOr(EnvAdminsFile, "sudo.bin"), "Path to the admins ledger file")
	seed       = flag.Int("seed", envInt(EnvSeed, teller.DefaultSeed), "Window size of the at rest transform")
	logEnv     = flag.String("env", envOr(EnvLogEnv, string(logger.EnvironmentProduction)), "Logging environment (production, development, local)")
	logLevel   = flag.String("log-level", os.Getenv(EnvLogLevel), "Logging level, defaults to the environment level")
	raw        = flag.Bool("raw", false, "Print markdown as is instead of rendering it for the terminal")
)

// stdout receives the documents printed by commands.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// newLogger builds the application logger from the global flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(logger.Config{
		Environment: logger.Environment(*logEnv),
		Level:       *logLevel,
	})
}

// openSession is the central function to open the users and admins ledgers.
func openSession() (*teller.Session, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}
	return teller.Open(teller.Config{
		UsersPath:  *usersFile,
		AdminsPath: *adminsFile,
		Seed:       *seed,
		Logger:     log,
	})
}

// closeSession writes the ledgers back, reporting failures on stderr.
func closeSession(s *teller.Session) subcommands.ExitStatus {
	if err := s.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledgers: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it as is with -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
