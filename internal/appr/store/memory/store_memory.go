// Package memory provides the in-memory decision audit store. Decisions are
// request-scoped; the trail exists for operator inspection, not durability,
// so a bounded ring of recent records is enough.
package memory

import (
	"context"
	"sync"

	"skyclaim/internal/appr"
)

// Store keeps the most recent decision records, oldest evicted first.
type Store struct {
	mu      sync.RWMutex
	records []appr.Record
	depth   int
}

// NewStore creates a store retaining at most depth records.
func NewStore(depth int) *Store {
	if depth <= 0 {
		depth = 1000
	}
	return &Store{depth: depth}
}

// Append adds a record, evicting the oldest when the store is full.
func (s *Store) Append(_ context.Context, rec appr.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if len(s.records) > s.depth {
		s.records = s.records[len(s.records)-s.depth:]
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (s *Store) ListRecent(_ context.Context, limit int) ([]appr.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]appr.Record, 0, limit)
	for i := len(s.records) - 1; i >= len(s.records)-limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
