// Package cas implements the install ledger as a flat JSON file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InstallLedger = (*Store)(nil)

// Store implements ports.InstallLedger using a flat JSON file keyed by dependency name.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.InstallRecord
}

// NewStore creates a Store backed by the file at the given path.
// A missing file is treated as an empty ledger; it is created on the first Put.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.InstallRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path) //nolint:gosec // path is derived from the project layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrLedgerReadFailed, err), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(errors.Join(domain.ErrLedgerReadFailed, err), "path", s.path)
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrLedgerWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(errors.Join(domain.ErrLedgerWriteFailed, err), "path", s.path)
	}

	// Replace atomically; readers never observe a partially written ledger.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return zerr.With(errors.Join(domain.ErrLedgerWriteFailed, err), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(errors.Join(domain.ErrLedgerWriteFailed, err), "path", s.path)
	}

	return nil
}

// Get retrieves the install record for a dependency.
func (s *Store) Get(dependency string) (*domain.InstallRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[dependency]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the install record and persists the ledger.
func (s *Store) Put(record domain.InstallRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[record.Dependency] = record
	return s.save()
}
