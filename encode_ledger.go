package moneytracker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Ledger file header values.
const (
	FormatName    = "moneytracker"
	FormatVersion = 1
)

// ErrNoHeader is returned when a ledger file does not start with an init line.
var ErrNoHeader = errors.New("missing ledger header")

// header is the first line of every ledger file.
type header struct {
	Command CommandType `json:"command"`
	Format  string      `json:"format"`
	Version int         `json:"version"`
}

func (h header) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", h.Command)
	w.Append("format", h.Format)
	w.Append("version", h.Version)
	return w.MarshalJSON()
}

// txCmd is the persisted shape of a Transaction.
type txCmd struct {
	Command     CommandType      `json:"command"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.What())
	w.Append("amount", t.amount)
	w.Optional("description", t.description)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Unknown fields and commands are rejected.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var cmd txCmd
	if err := decodeStrict(data, &cmd); err != nil {
		return err
	}
	if cmd.Amount == nil {
		return fmt.Errorf("%s transaction has no amount", cmd.Command)
	}
	switch cmd.Command {
	case CmdIncome:
		*t = NewIncome(cmd.Description, *cmd.Amount)
	case CmdExpense:
		*t = NewExpense(cmd.Description, *cmd.Amount)
	default:
		return fmt.Errorf("unknown transaction command: %q", cmd.Command)
	}
	return nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// DecodeLedger decodes the transactions of a JSONL ledger stream.
//
// The first non empty line must be the ledger header, every other line a
// transaction. Any deviation is an error. Lines have no length limit.
func DecodeLedger(r io.Reader) ([]Transaction, error) {
	txs := make([]Transaction, 0)
	reader := bufio.NewReader(r)
	seenHeader := false
	line := 0

	for {
		lineBytes, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading from input: %w", err)
		}
		if len(lineBytes) == 0 && err != nil {
			break
		}
		line++
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue // Skip empty lines
		}

		if !seenHeader {
			var h header
			if err := decodeStrict(lineBytes, &h); err != nil {
				return nil, fmt.Errorf("line %d: could not decode ledger header: %w", line, err)
			}
			if err := h.check(); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			seenHeader = true
			continue
		}

		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction %q: %w", line, string(bytes.TrimSpace(lineBytes)), err)
		}
		txs = append(txs, tx)
	}

	if !seenHeader {
		return nil, ErrNoHeader
	}
	return txs, nil
}

func (h header) check() error {
	if h.Command != CmdInit || h.Format != FormatName {
		return ErrNoHeader
	}
	if h.Version != FormatVersion {
		return fmt.Errorf("unsupported ledger version %d, want %d", h.Version, FormatVersion)
	}
	return nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes the header and then every transaction, in order, as JSONL.
func EncodeLedger(w io.Writer, txs []Transaction) error {
	data, err := json.Marshal(header{Command: CmdInit, Format: FormatName, Version: FormatVersion})
	if err != nil {
		return fmt.Errorf("failed to marshal ledger header: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
