package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"warsha/internal/store"
)

var (
	ErrNotJSON       = errors.New("backup is not valid JSON")
	ErrMissingFields = errors.New("backup must contain clients and cars arrays")
)

// ParseBackup validates and decodes an externally supplied backup blob.
// The blob is accepted only if it parses and carries array-typed clients
// and cars fields; anything else is rejected so the caller's current state
// stays untouched.
func ParseBackup(data []byte) (*store.Store, error) {
	var probe struct {
		Clients json.RawMessage `json:"clients"`
		Cars    json.RawMessage `json:"cars"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	if !isArray(probe.Clients) || !isArray(probe.Cars) {
		return nil, ErrMissingFields
	}
	var s store.Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	s.Init()
	return &s, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
