package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt [-check]

  Validates the ledger file and writes it back in its canonical JSONL form.
  Unlike the other commands, an invalid file is reported with the offending
  line and left untouched: it is not moved to the backup file.

Usage Examples:
# Rewrites the ledger file in place.
$ mm fmt

# Only reports whether the ledger file is canonical.
$ mm fmt -check
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Do not write, fail if the file is not canonical")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(LedgerPath(), os.Stderr)
}

func (c *fmtCmd) run(path string, w io.Writer) subcommands.ExitStatus {
	original, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "Error: could not read ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	txs, err := moneytracker.DecodeLedger(bytes.NewReader(original))
	if err != nil {
		fmt.Fprintf(w, "Error: invalid ledger %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	var formatted bytes.Buffer
	if err := moneytracker.EncodeLedger(&formatted, txs); err != nil {
		fmt.Fprintf(w, "Error: could not format ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if bytes.Equal(original, formatted.Bytes()) {
		return subcommands.ExitSuccess
	}
	if c.check {
		fmt.Fprintf(w, "Ledger %q is not formatted.\n", path)
		return subcommands.ExitFailure
	}

	if err := moneytracker.NewFileStore(path).Save(txs); err != nil {
		fmt.Fprintf(w, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(w, "Ledger %q has been formatted.\n", path)
	return subcommands.ExitSuccess
}
