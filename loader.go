package carteira

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store persists a ledger as a single CSV file.
//
// Appends are a single write on an O_APPEND descriptor so a concurrent reader
// never observes a partial record. Removals rewrite the whole file through a
// temporary file and a rename. There is no cross-process locking: the store
// assumes a single writer, two concurrent writers can lose an update.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore returns a store backed by the given file path. The file does not
// have to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing this store.
func (s *Store) Path() string { return s.path }

// Load returns the full ledger snapshot in insertion order. A missing file
// yields an empty ledger, not an error. Decoded snapshots are cached by path
// until the next mutation.
func (s *Store) Load() (*Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Ledger, error) {
	if cached, ok := cachedSnapshot(s.path); ok {
		return cached.clone(), nil
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	storeSnapshot(s.path, ledger.clone())
	return ledger, nil
}

// Append validates the transaction and adds it at the end of the ledger file,
// creating the file with its header when absent.
func (s *Store) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := EncodeTransaction(tx)
	if err != nil {
		return err
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		if err := s.rewrite(NewLedger()); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write(record); err != nil {
		return fmt.Errorf("could not append to ledger file %q: %w", s.path, err)
	}
	invalidateSnapshot(s.path)
	return nil
}

// RemoveAt deletes the row at the given ordinal index in the current snapshot
// and rewrites the file. An out-of-range index returns ErrInvalidIndex and
// leaves the file unchanged.
func (s *Store) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load()
	if err != nil {
		return err
	}
	if err := ledger.RemoveAt(index); err != nil {
		return err
	}
	if err := s.rewrite(ledger); err != nil {
		return err
	}
	invalidateSnapshot(s.path)
	return nil
}

// rewrite atomically replaces the ledger file with the encoded ledger.
func (s *Store) rewrite(ledger *Ledger) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "ledger-*.csv")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("could not replace ledger file %q: %w", s.path, err)
	}
	return nil
}

// clone returns an independent copy of the ledger.
func (l *Ledger) clone() *Ledger {
	c := NewLedger()
	c.transactions = append(c.transactions, l.transactions...)
	return c
}
