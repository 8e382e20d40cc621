// Package storage persists the store to a durable slot. Two backends are
// provided: a JSON snapshot file, which is also the backup format, and a
// SQLite repository for installs that prefer a real database file.
package storage

import (
	"context"

	"warsha/internal/store"
)

// Persister loads and saves the whole store. Load must yield an empty
// store, not an error, when no usable prior data exists; the tool starting
// fresh is normal, not a failure.
type Persister interface {
	Load(ctx context.Context) (*store.Store, error)
	Save(ctx context.Context, s *store.Store) error
}
