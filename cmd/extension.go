package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix is the prefix of external subcommand binaries: "mm report"
// runs "mm-report" from the PATH.
const ExtensionPrefix = "mm-"

// EnvPretty passes the -pretty flag to extensions.
const EnvPretty = "MM_PRETTY"

// RunExtension attempts to find and execute an external mm-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Extensions receive the resolved ledger file in $MM_LEDGER_FILE so that they
// work on the same ledger as the built-in commands.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+LedgerPath())
	cmd.Env = append(cmd.Env, EnvPretty+"="+strconv.FormatBool(*pretty))

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
