package moneytracker

import (
	"fmt"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the ledger file name when it is quarantined.
const BackupSuffix = ".backup"

// FileStore is a Store backed by a single JSONL ledger file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore persisting to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the absolute path of the ledger file when it can be resolved.
func (s *FileStore) Path() string {
	if abs, err := filepath.Abs(s.path); err == nil {
		return abs
	}
	return s.path
}

// BackupPath returns the path a corrupted ledger file is moved to.
func (s *FileStore) BackupPath() string {
	return s.Path() + BackupSuffix
}

// Load opens and decodes the ledger file. A missing file yields an error
// wrapping fs.ErrNotExist.
func (s *FileStore) Load() ([]Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	txs, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	return txs, nil
}

// Save truncates the ledger file and writes every transaction to it.
func (s *FileStore) Save(txs []Transaction) (err error) {
	// Ensure the directory for the ledger file exists.
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.path, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing ledger file %q: %w", s.path, cerr)
		}
	}()

	if err := EncodeLedger(f, txs); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", s.path, err)
	}
	return nil
}

// Quarantine renames the ledger file to its backup path, replacing any
// previous backup.
func (s *FileStore) Quarantine() (string, error) {
	backup := s.BackupPath()
	if err := os.Rename(s.path, backup); err != nil {
		return "", fmt.Errorf("could not move %q to %q: %w", s.path, backup, err)
	}
	return backup, nil
}
