package moneytracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeLedger(t *testing.T) {
	jsonlStream := `
{"command":"init","format":"moneytracker","version":1}
{"command":"income","amount":1000,"description":"Paycheck"}

{"command":"expense","amount":"450.5","description":"Rent"}
{"command":"expense","amount":3}
`
	txs, err := DecodeLedger(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	want := []Transaction{
		NewIncome("Paycheck", D("1000")),
		NewExpense("Rent", D("450.5")),
		NewExpense("", D("3")),
	}
	if diff := cmp.Diff(want, txs); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLedgerEmpty(t *testing.T) {
	txs, err := DecodeLedger(strings.NewReader(`{"command":"init","format":"moneytracker","version":1}` + "\n"))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}
	if txs == nil || len(txs) != 0 {
		t.Errorf("DecodeLedger() = %v, want an empty non nil slice", txs)
	}
}

func TestDecodeLedgerErrors(t *testing.T) {
	const head = `{"command":"init","format":"moneytracker","version":1}` + "\n"
	testCases := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"binary garbage", "\xac\xed\x00\x05sr\x00\x13java.util.ArrayList"},
		{"no header", `{"command":"income","amount":1,"description":"a"}`},
		{"wrong format", `{"command":"init","format":"ledger","version":1}`},
		{"future version", `{"command":"init","format":"moneytracker","version":2}`},
		{"header with extra field", `{"command":"init","format":"moneytracker","version":1,"balance":3}`},
		{"not an object", head + `[1,2,3]`},
		{"unknown command", head + `{"command":"transfer","amount":1}`},
		{"missing amount", head + `{"command":"income","description":"a"}`},
		{"bad amount", head + `{"command":"income","amount":"ten"}`},
		{"unknown field", head + `{"command":"income","amount":1,"category":"food"}`},
		{"truncated line", head + `{"command":"income","amo`},
		{"trailing data", head + `{"command":"income","amount":1} {}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if txs, err := DecodeLedger(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeLedger() = %v, expected an error", txs)
			}
		})
	}
}

func TestDecodeLedgerNoHeader(t *testing.T) {
	_, err := DecodeLedger(strings.NewReader("\n\n"))
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("DecodeLedger() error = %v, want ErrNoHeader", err)
	}
}

func TestEncodeLedger(t *testing.T) {
	txs := []Transaction{
		NewIncome("Paycheck", D("1000.00")),
		NewExpense("Rent \"flat\"", D("450.50")),
		NewExpense("", D("0")),
	}
	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, txs); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}

	want := `{"command":"init","format":"moneytracker","version":1}
{"command":"income","amount":1000,"description":"Paycheck"}
{"command":"expense","amount":450.5,"description":"Rent \"flat\""}
{"command":"expense","amount":0}
`
	if got := buffer.String(); got != want {
		t.Errorf("EncodeLedger() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

// TestEncodeDecodeLedger verifies that decoding an encoded ledger yields the
// same transactions in the same order.
func TestEncodeDecodeLedger(t *testing.T) {
	txs := []Transaction{
		NewExpense("Coffee", D("2.25")),
		NewIncome("Paycheck", D("1000")),
		NewExpense("Coffee", D("2.25")),
		NewIncome("", D("0.01")),
	}
	var buffer bytes.Buffer
	if err := EncodeLedger(&buffer, txs); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeLedger(&buffer)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(txs, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
