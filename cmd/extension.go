package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external atm-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The global flags are passed to the extension as TELLER_* environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "atm-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvUsersFile+"="+*usersFile)
	cmd.Env = append(cmd.Env, EnvAdminsFile+"="+*adminsFile)
	cmd.Env = append(cmd.Env, EnvSeed+"="+strconv.Itoa(*seed))
	cmd.Env = append(cmd.Env, EnvLogEnv+"="+*logEnv)
	cmd.Env = append(cmd.Env, EnvLogLevel+"="+*logLevel)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
