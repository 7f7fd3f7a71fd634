package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spenso-dev/spenso/internal/model"
)

// Store owns the expenses.csv file. A missing file is the valid empty
// dataset, not an error; any other I/O failure propagates to the caller.
type Store struct {
	path string
}

// NewStore creates a Store over the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full record set from disk.
func (s *Store) Load() ([]model.Expense, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening expenses %s: %w", s.path, err)
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("reading expenses %s: %w", s.path, err)
	}
	return expenses, nil
}

// Save overwrites the store with the full record set, creating the
// parent directory on first write. Total overwrite, no merge path:
// the system guarantees a single writer.
func (s *Store) Save(expenses []model.Expense) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating expenses file: %w", err)
	}
	defer f.Close()

	if err := WriteExpenses(f, expenses); err != nil {
		return fmt.Errorf("writing expenses %s: %w", s.path, err)
	}
	return nil
}

// Clear deletes the store file. A missing file counts as success.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing expenses %s: %w", s.path, err)
	}
	return nil
}

// Raw returns the current store bytes for download. A missing file
// yields a header-only document.
func (s *Store) Raw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte(Header + "\n"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading expenses %s: %w", s.path, err)
	}
	return data, nil
}
