// Package cmd implements the CLI application to manage a money ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

const (
	// EnvLedgerFile overrides the default ledger file when -ledger-file is not set.
	EnvLedgerFile = "MM_LEDGER_FILE"
	// DefaultLedgerFile is used when neither the flag nor the environment is set.
	DefaultLedgerFile = "transactions.jsonl"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSONL format). Defaults to $"+EnvLedgerFile+" or "+DefaultLedgerFile)
var pretty = flag.Bool("pretty", false, "Render the output as styled markdown")

// Commands lists every subcommand of the application.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&expenseCmd{},
	&balanceCmd{},
	&listCmd{},
	&editDescriptionCmd{},
	&editAmountCmd{},
	&deleteCmd{},
	&shellCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "ledger")
	}
}

// LedgerPath returns the ledger file selected by the flag, the environment or the default.
func LedgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if env := os.Getenv(EnvLedgerFile); env != "" {
		return env
	}
	return DefaultLedgerFile
}

// OpenLedger opens the application ledger. Notices and errors are logged to stderr.
func OpenLedger() *moneytracker.Ledger {
	logger := log.New(os.Stderr, "", 0)
	return moneytracker.Open(moneytracker.NewFileStore(LedgerPath()), logger)
}

// printMarkdown prints md to stdout, styled when -pretty is set.
func printMarkdown(md string) {
	writeMarkdown(os.Stdout, md, *pretty)
}

func writeMarkdown(w io.Writer, md string, styled bool) {
	if styled {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				md = out
			}
		}
	}
	fmt.Fprint(w, md)
}
