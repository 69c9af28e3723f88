package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"folio/pkg/platform/sentinel"
)

type recordKey struct {
	kind string
	id   uuid.UUID
}

// InMemory keeps documents in a mutex-guarded map. It backs tests and
// database-less development runs.
type InMemory struct {
	mu      sync.RWMutex
	records map[recordKey]Record
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[recordKey]Record)}
}

func (s *InMemory) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := rec
	stored.Doc = append([]byte(nil), rec.Doc...)
	s.records[recordKey{kind: rec.Kind, id: rec.ID}] = stored
	return nil
}

func (s *InMemory) Find(_ context.Context, kind string, id uuid.UUID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[recordKey{kind: kind, id: id}]
	if !ok {
		return Record{}, sentinel.ErrNotFound
	}
	rec.Doc = append([]byte(nil), rec.Doc...)
	return rec, nil
}

func (s *InMemory) List(_ context.Context, kind string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0)
	for key, rec := range s.records {
		if key.kind != kind {
			continue
		}
		rec.Doc = append([]byte(nil), rec.Doc...)
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortAt.Equal(out[j].SortAt) {
			// Stable tiebreak so paginating clients see a fixed order.
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].SortAt.After(out[j].SortAt)
	})
	return out, nil
}

func (s *InMemory) Delete(_ context.Context, kind string, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := recordKey{kind: kind, id: id}
	if _, ok := s.records[key]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, key)
	return nil
}
