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
	"github.com/shopspring/decimal"
)

var errNegativeAmount = errors.New("amount must not be negative")

// parseAmount parses a user typed amount and rejects negative values: the
// sign of a transaction is given by its kind, not by its amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := moneytracker.ParseAmount(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return amount, nil
}

// amountValue is a flag.Value holding a non negative amount.
type amountValue struct {
	amount decimal.Decimal
	set    bool
}

func (a *amountValue) String() string {
	if a == nil || !a.set {
		return ""
	}
	return a.amount.String()
}

func (a *amountValue) Set(s string) error {
	amount, err := parseAmount(s)
	if err != nil {
		return err
	}
	a.amount, a.set = amount, true
	return nil
}

// addCmd records a new income or expense.
type addCmd struct {
	income bool
	amount amountValue
	memo   string
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.amount, "a", "Amount of the transaction, e.g. 42.50")
	f.StringVar(&c.memo, "m", "", "Description of the transaction")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.amount.set {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return c.run(OpenLedger(), os.Stdout)
}

func (c *addCmd) run(l *moneytracker.Ledger, w io.Writer) subcommands.ExitStatus {
	if c.income {
		l.AddIncome(c.memo, c.amount.amount)
	} else {
		l.AddExpense(c.memo, c.amount.amount)
	}
	last := l.Len() - 1
	if tx, err := l.Transaction(last); err == nil {
		fmt.Fprint(w, renderer.Transaction(last, tx))
	}
	fmt.Fprint(w, renderer.Balance(l.Balance()))
	return subcommands.ExitSuccess
}

// --- Income Command ---

type incomeCmd struct{ addCmd }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money coming in" }
func (*incomeCmd) Usage() string {
	return `income -a <amount> [-m <description>]

  Records an income. The amount is added to the balance.
`
}

func (c *incomeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.income = true
	return c.addCmd.Execute(ctx, f, args...)
}

// --- Expense Command ---

type expenseCmd struct{ addCmd }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money going out" }
func (*expenseCmd) Usage() string {
	return `expense -a <amount> [-m <description>]

  Records an expense. The amount is subtracted from the balance.
`
}
