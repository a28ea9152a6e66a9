package moneytracker

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create decimals from string constants.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// memStore is an in-memory Store recording how often it is saved.
type memStore struct {
	txs         []Transaction
	exists      bool
	loadErr     error
	saveErr     error
	saves       int
	quarantined bool
}

func (m *memStore) Load() ([]Transaction, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.exists {
		return nil, fmt.Errorf("memory: %w", fs.ErrNotExist)
	}
	return slices.Clone(m.txs), nil
}

func (m *memStore) Save(txs []Transaction) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.txs = slices.Clone(txs)
	m.exists = true
	return nil
}

func (m *memStore) Quarantine() (string, error) {
	if !m.exists {
		return "", errors.New("memory: nothing to quarantine")
	}
	m.quarantined = true
	m.exists = false
	return "memory.backup", nil
}

func (m *memStore) Path() string { return "memory" }

// newTestLedger opens a Ledger on store and captures its log output.
func newTestLedger(t *testing.T, store Store) (*Ledger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return Open(store, log.New(&buf, "", 0)), &buf
}

// assertBalanceInvariant checks that the cached balance is the signed sum of the transactions.
func assertBalanceInvariant(t *testing.T, l *Ledger) {
	t.Helper()
	sum := decimal.Zero
	for _, tx := range l.Transactions() {
		sum = sum.Add(tx.Signed())
	}
	if !l.Balance().Equal(sum) {
		t.Errorf("Balance() = %s, want signed sum %s", l.Balance(), sum)
	}
}
