// Package repo gives typed access to the shared document store. A
// Collection marshals one resource type in and out of store records for a
// fixed kind.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/content/store"
)

// Collection reads and writes one resource type under one kind.
type Collection[T store.Document] struct {
	kind  string
	store store.Store
	alloc func() T
}

// NewCollection binds a resource type to a kind. alloc must return a fresh
// zero value for unmarshalling.
func NewCollection[T store.Document](st store.Store, kind string, alloc func() T) *Collection[T] {
	return &Collection[T]{kind: kind, store: st, alloc: alloc}
}

// Kind returns the store kind this collection writes under.
func (c *Collection[T]) Kind() string { return c.kind }

// Save upserts the document by its id.
func (c *Collection[T]) Save(ctx context.Context, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.kind, err)
	}
	rec := store.Record{
		ID:        v.DocID(),
		Kind:      c.kind,
		CreatedAt: v.DocCreatedAt(),
		SortAt:    v.SortKey(),
		Doc:       doc,
	}
	return c.store.Save(ctx, rec)
}

// Find loads one document. Misses surface as sentinel.ErrNotFound from the
// store.
func (c *Collection[T]) Find(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	rec, err := c.store.Find(ctx, c.kind, id)
	if err != nil {
		return zero, err
	}
	v := c.alloc()
	if err := json.Unmarshal(rec.Doc, v); err != nil {
		return zero, fmt.Errorf("unmarshal %s: %w", c.kind, err)
	}
	return v, nil
}

// List loads every document of the kind, newest sort key first.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	recs, err := c.store.List(ctx, c.kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v := c.alloc()
		if err := json.Unmarshal(rec.Doc, v); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", c.kind, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Delete removes one document; sentinel.ErrNotFound on a miss.
func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return c.store.Delete(ctx, c.kind, id)
}
