package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"warsha/internal/store"
)

// FileStore keeps the store as one JSON document with the five collection
// arrays. The document round-trips through encode/decode unchanged, so the
// same file doubles as the backup format.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads the snapshot. A missing or malformed file yields the empty
// default; prior-data problems are logged, never surfaced.
func (f *FileStore) Load(ctx context.Context) (*store.Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Snapshot unreadable, starting empty", "path", f.path, "error", err)
		}
		return store.New(), nil
	}
	var s store.Store
	if err := json.Unmarshal(data, &s); err != nil {
		slog.WarnContext(ctx, "Snapshot malformed, starting empty", "path", f.path, "error", err)
		return store.New(), nil
	}
	s.Init()
	return &s, nil
}

// Save writes the snapshot through a temp file and rename, so a crash
// mid-write leaves the previous snapshot intact.
func (f *FileStore) Save(ctx context.Context, s *store.Store) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	slog.DebugContext(ctx, "Snapshot saved",
		"path", f.path,
		"clients", len(s.Clients),
		"cars", len(s.Cars),
		"maintenance", len(s.Maintenance))
	return nil
}

// Encode renders the store as an indented JSON backup blob.
func Encode(s *store.Store) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}
