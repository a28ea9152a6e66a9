package cmd

import (
	"context"
	"flag"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/renderer"
	"github.com/google/subcommands"
)

// --- List Command ---

type listCmd struct {
	head int
	tail int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*listCmd) Usage() string {
	return `list [-head <n>] [-tail <n>]

  Lists the transactions of the ledger, numbered from 1 in the order they
  were recorded. The numbers are the ones expected by edit commands.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	printMarkdown(p.render(OpenLedger()))
	return subcommands.ExitSuccess
}

// render keeps the numbering of the full ledger when the list is cut.
func (p *listCmd) render(l *moneytracker.Ledger) string {
	txs := l.Transactions()
	first, last := 0, len(txs)
	if p.head > 0 && last > p.head {
		last = p.head
	}
	if p.tail > 0 && len(txs) > p.tail {
		first = len(txs) - p.tail
	}
	return renderer.History(txs[first:last], first)
}

// --- Balance Command ---

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the current balance" }
func (*balanceCmd) Usage() string {
	return `balance

  Displays the balance: all incomes minus all expenses.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Balance(OpenLedger().Balance()))
	return subcommands.ExitSuccess
}
