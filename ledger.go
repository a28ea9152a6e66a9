package moneytracker

import (
	"errors"
	"io/fs"
	"log"
	"slices"

	"github.com/shopspring/decimal"
)

// ErrIndexOutOfRange is returned by operations addressing a transaction
// position that does not exist. The ledger is left untouched.
var ErrIndexOutOfRange = errors.New("transaction index out of range")

// Store persists the whole transaction sequence of a Ledger.
type Store interface {
	// Load returns the persisted transactions. The error wraps fs.ErrNotExist
	// when nothing has been persisted yet.
	Load() ([]Transaction, error)
	// Save overwrites the persisted transactions.
	Save(txs []Transaction) error
	// Quarantine moves the persisted data out of the way and returns where it went.
	Quarantine() (string, error)
	// Path describes the store location for humans.
	Path() string
}

// Ledger owns an ordered list of transactions and the running balance they
// imply.
//
// The balance is always the sum of income amounts minus the sum of expense
// amounts. Every mutation is immediately saved to the Store; a failed save is
// logged and the in-memory state is kept.
type Ledger struct {
	transactions []Transaction
	balance      decimal.Decimal
	store        Store
	logger       *log.Logger
}

// Open creates a Ledger hydrated from the store.
//
// A missing store starts an empty ledger. A store that cannot be decoded is
// quarantined and an empty ledger is started as well: Open never fails.
func Open(store Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.Default()
	}
	l := &Ledger{
		transactions: make([]Transaction, 0),
		store:        store,
		logger:       logger,
	}

	txs, err := store.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Welcome to Money Manager! A new ledger will be created at: %s", store.Path())
	case err != nil:
		logger.Printf("Error loading previous transactions: %v", err)
		logger.Println("Starting with a fresh transaction history.")
		backup, qerr := store.Quarantine()
		if qerr != nil {
			logger.Printf("Could not back up the ledger file: %v", qerr)
		} else {
			logger.Printf("Previous data file has been backed up to: %s", backup)
		}
	default:
		l.transactions = append(l.transactions, txs...)
		l.recomputeBalance()
	}
	return l
}

// recomputeBalance rebuilds the balance from the transactions.
func (l *Ledger) recomputeBalance() {
	l.balance = decimal.Zero
	for _, tx := range l.transactions {
		l.balance = l.balance.Add(tx.Signed())
	}
}

// save persists the transactions. Failures are only logged.
func (l *Ledger) save() {
	if err := l.store.Save(l.transactions); err != nil {
		l.logger.Printf("Error saving transactions: %v", err)
	}
}

// AddIncome appends an income transaction.
func (l *Ledger) AddIncome(description string, amount decimal.Decimal) {
	l.append(NewIncome(description, amount))
}

// AddExpense appends an expense transaction.
func (l *Ledger) AddExpense(description string, amount decimal.Decimal) {
	l.append(NewExpense(description, amount))
}

func (l *Ledger) append(tx Transaction) {
	l.transactions = append(l.transactions, tx)
	l.balance = l.balance.Add(tx.Signed())
	l.save()
}

// Balance returns the current balance.
func (l *Ledger) Balance() decimal.Decimal { return l.balance }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions in insertion order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Transaction returns the transaction at index.
func (l *Ledger) Transaction(index int) (Transaction, error) {
	if !l.inRange(index) {
		return Transaction{}, ErrIndexOutOfRange
	}
	return l.transactions[index], nil
}

func (l *Ledger) inRange(index int) bool {
	return index >= 0 && index < len(l.transactions)
}

// EditDescription replaces the description of the transaction at index.
// The balance is unaffected.
func (l *Ledger) EditDescription(index int, description string) error {
	if !l.inRange(index) {
		return ErrIndexOutOfRange
	}
	l.transactions[index] = l.transactions[index].withDescription(description)
	l.save()
	return nil
}

// EditAmount replaces the amount of the transaction at index. The old amount
// is removed from the balance and the new one applied, both with the sign of
// the existing transaction.
func (l *Ledger) EditAmount(index int, amount decimal.Decimal) error {
	if !l.inRange(index) {
		return ErrIndexOutOfRange
	}
	old := l.transactions[index]
	tx := old.withAmount(amount)
	l.balance = l.balance.Sub(old.Signed()).Add(tx.Signed())
	l.transactions[index] = tx
	l.save()
	return nil
}

// DeleteTransaction removes the transaction at index and reverts its
// contribution to the balance.
func (l *Ledger) DeleteTransaction(index int) error {
	if !l.inRange(index) {
		return ErrIndexOutOfRange
	}
	l.balance = l.balance.Sub(l.transactions[index].Signed())
	l.transactions = slices.Delete(l.transactions, index, index+1)
	l.save()
	return nil
}
