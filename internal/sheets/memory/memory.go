// Package memory is an in-memory Appender used in tests and when no
// external spreadsheet is configured.
package memory

import (
	"context"
	"errors"
	"sync"

	"warsha/internal/sheets"
)

type Entry struct {
	Target string
	Record sheets.Record
}

type Store struct {
	mu      sync.Mutex
	entries []Entry
	fail    map[string]error
}

var _ sheets.Appender = (*Store)(nil)

func New() *Store {
	return &Store{fail: map[string]error{}}
}

// FailTarget makes every Append to the target fail, to exercise the
// best-effort paths.
func (s *Store) FailTarget(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[target] = errors.New("simulated failure for " + target)
}

func (s *Store) Append(_ context.Context, target string, rec sheets.Record) error {
	if target == "" {
		return errors.New("empty target sheet")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.fail[target]; ok {
		return err
	}
	copied := make(sheets.Record, len(rec))
	for k, v := range rec {
		copied[k] = v
	}
	s.entries = append(s.entries, Entry{Target: target, Record: copied})
	return nil
}

// Entries returns a copy of everything appended so far.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}
