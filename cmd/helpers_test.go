package cmd

import (
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/etnz/moneytracker"
	"github.com/shopspring/decimal"
)

func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newLedger opens an empty ledger in a temporary directory.
func newLedger(t *testing.T) *moneytracker.Ledger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.jsonl")
	return moneytracker.Open(moneytracker.NewFileStore(path), log.New(io.Discard, "", 0))
}
