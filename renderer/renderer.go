// Package renderer turns ledger data into the text shown to the user.
//
// The produced text is plain enough to be printed as is, and valid markdown
// so that it can be pretty printed in a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/shopspring/decimal"
)

// NoTransactions is rendered in place of an empty transaction list.
const NoTransactions = "No transactions to show."

// Balance renders the balance line, e.g. "Current Balance: $600.00".
func Balance(balance decimal.Decimal) string {
	return fmt.Sprintf("Current Balance: %s\n", moneytracker.BalanceString(balance))
}

// Transactions renders the numbered transaction history, numbers starting at 1.
func Transactions(txs []moneytracker.Transaction) string {
	return History(txs, 0)
}

// History renders txs as a part of the transaction history starting at the
// 0-based index first, keeping the numbers of the whole history.
//
// A markdown ordered list that does not start at 1 cannot follow a paragraph
// line, so the heading is then separated by a blank line.
func History(txs []moneytracker.Transaction, first int) string {
	if len(txs) == 0 {
		return NoTransactions + "\n"
	}
	var b strings.Builder
	b.WriteString("Transaction History:\n")
	if first > 0 {
		b.WriteString("\n")
	}
	for i, tx := range txs {
		b.WriteString(Transaction(first+i, tx))
	}
	return b.String()
}

// Transaction renders a single transaction line at the 0-based index.
func Transaction(index int, tx moneytracker.Transaction) string {
	return fmt.Sprintf("%d. %s\n", index+1, tx)
}

// Ledger renders the balance followed by the transaction history.
func Ledger(balance decimal.Decimal, txs []moneytracker.Transaction) string {
	return Balance(balance) + "\n" + Transactions(txs)
}
