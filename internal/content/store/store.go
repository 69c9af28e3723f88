// Package store persists content documents. All nine content resources
// share one record shape and one store implementation, configured per
// resource by kind; typed access lives in internal/content/repo.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record is the stored envelope for a content document. Doc holds the full
// resource JSON; CreatedAt and SortAt are denormalized for ordering.
type Record struct {
	ID        uuid.UUID
	Kind      string
	CreatedAt time.Time
	SortAt    time.Time
	Doc       json.RawMessage
}

// Document is what a resource must expose to live in the store: identity,
// creation time, and the timestamp its listings sort by.
type Document interface {
	DocID() uuid.UUID
	SetDocID(uuid.UUID)
	DocCreatedAt() time.Time
	SetDocCreatedAt(time.Time)
	SortKey() time.Time
}

// Store is the document repository contract. Save upserts by (kind, id);
// Find and Delete return sentinel.ErrNotFound on a miss; List returns
// records ordered by SortAt descending.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Find(ctx context.Context, kind string, id uuid.UUID) (Record, error)
	List(ctx context.Context, kind string) ([]Record, error)
	Delete(ctx context.Context, kind string, id uuid.UUID) error
}
