package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

const invalidNumber = "Invalid transaction number!"

// report turns the outcome of an edit into an exit status.
func report(w io.Writer, l *moneytracker.Ledger, err error, success string) subcommands.ExitStatus {
	if errors.Is(err, moneytracker.ErrIndexOutOfRange) {
		fmt.Fprintln(os.Stderr, invalidNumber)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(w, success)
	fmt.Fprint(w, renderer.Balance(l.Balance()))
	return subcommands.ExitSuccess
}

// --- Edit Description Command ---

type editDescriptionCmd struct {
	number int
	memo   string
}

func (*editDescriptionCmd) Name() string     { return "edit-description" }
func (*editDescriptionCmd) Synopsis() string { return "change the description of a transaction" }
func (*editDescriptionCmd) Usage() string {
	return `edit-description -n <number> -m <description>

  Replaces the description of the transaction numbered <number> in 'list'.
`
}

func (c *editDescriptionCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "n", 0, "Transaction number, as shown by 'list'")
	f.StringVar(&c.memo, "m", "", "New description")
}

func (c *editDescriptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return c.run(OpenLedger(), os.Stdout)
}

func (c *editDescriptionCmd) run(l *moneytracker.Ledger, w io.Writer) subcommands.ExitStatus {
	err := l.EditDescription(c.number-1, c.memo)
	return report(w, l, err, "Description updated successfully.")
}

// --- Edit Amount Command ---

type editAmountCmd struct {
	number int
	amount amountValue
}

func (*editAmountCmd) Name() string     { return "edit-amount" }
func (*editAmountCmd) Synopsis() string { return "change the amount of a transaction" }
func (*editAmountCmd) Usage() string {
	return `edit-amount -n <number> -a <amount>

  Replaces the amount of the transaction numbered <number> in 'list'. An
  income stays an income and an expense stays an expense.
`
}

func (c *editAmountCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "n", 0, "Transaction number, as shown by 'list'")
	f.Var(&c.amount, "a", "New amount, e.g. 42.50")
}

func (c *editAmountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == 0 || !c.amount.set {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return c.run(OpenLedger(), os.Stdout)
}

func (c *editAmountCmd) run(l *moneytracker.Ledger, w io.Writer) subcommands.ExitStatus {
	err := l.EditAmount(c.number-1, c.amount.amount)
	return report(w, l, err, "Amount updated successfully.")
}

// --- Delete Command ---

type deleteCmd struct {
	number int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction from the ledger" }
func (*deleteCmd) Usage() string {
	return `delete -n <number>

  Removes the transaction numbered <number> in 'list'. Transactions after it
  are renumbered.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.number, "n", 0, "Transaction number, as shown by 'list'")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return c.run(OpenLedger(), os.Stdout)
}

func (c *deleteCmd) run(l *moneytracker.Ledger, w io.Writer) subcommands.ExitStatus {
	err := l.DeleteTransaction(c.number - 1)
	return report(w, l, err, "Transaction deleted successfully.")
}
