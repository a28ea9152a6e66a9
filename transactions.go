package moneytracker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// CommandType is a typed string identifying a line in the ledger file.
type CommandType string

// Command types used in the ledger file.
const (
	CmdInit    CommandType = "init"
	CmdIncome  CommandType = "income"
	CmdExpense CommandType = "expense"
)

// Transaction is one income or expense entry of the ledger.
//
// A Transaction is immutable: editing an entry means building a new
// Transaction and replacing the old one in the Ledger. It has no identity
// besides its position in the Ledger.
type Transaction struct {
	description string
	amount      decimal.Decimal // magnitude, the sign comes from income
	income      bool
}

// NewTransaction creates a new Transaction. The amount is stored as given.
// Every invalid UTF-8 byte of the description is replaced by U+FFFD, as the
// ledger file would do.
func NewTransaction(description string, amount decimal.Decimal, income bool) Transaction {
	return Transaction{description: validText(description), amount: amount, income: income}
}

// validText replaces each invalid UTF-8 byte of s by U+FFFD.
func validText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// NewIncome creates a new income (credit) Transaction.
func NewIncome(description string, amount decimal.Decimal) Transaction {
	return NewTransaction(description, amount, true)
}

// NewExpense creates a new expense (debit) Transaction.
func NewExpense(description string, amount decimal.Decimal) Transaction {
	return NewTransaction(description, amount, false)
}

// Description returns the free text describing the transaction.
func (t Transaction) Description() string { return t.description }

// Amount returns the magnitude of the transaction, see Signed for the
// contribution to the balance.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// IsIncome reports whether the transaction is an income rather than an expense.
func (t Transaction) IsIncome() bool { return t.income }

// What returns the command under which the transaction is persisted.
func (t Transaction) What() CommandType {
	if t.income {
		return CmdIncome
	}
	return CmdExpense
}

// Signed returns the contribution of the transaction to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.income {
		return t.amount
	}
	return t.amount.Neg()
}

// withDescription returns a copy of t with another description.
func (t Transaction) withDescription(description string) Transaction {
	return NewTransaction(description, t.amount, t.income)
}

// withAmount returns a copy of t with another amount.
func (t Transaction) withAmount(amount decimal.Decimal) Transaction {
	return NewTransaction(t.description, amount, t.income)
}

// Equal reports whether t and o have the same kind, description and amount.
func (t Transaction) Equal(o Transaction) bool {
	return t.description == o.description && t.amount.Equal(o.amount) && t.income == o.income
}

// String renders the transaction as "+$42.50 - Paycheck" or "-$12.00 - Coffee".
func (t Transaction) String() string {
	sign := "-"
	if t.income {
		sign = "+"
	}
	return fmt.Sprintf("%s%s - %s", sign, Dollars(t.amount), t.description)
}
