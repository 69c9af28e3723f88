package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"folio/internal/content/repo"
	"folio/internal/content/store"
	dErrors "folio/pkg/domain-errors"
	"folio/pkg/platform/sentinel"
)

// CRUD is the shared content service. One instance per resource; noun is
// the client-facing resource name used in messages ("Project not found",
// "Project removed").
type CRUD[T store.Document] struct {
	noun string
	col  *repo.Collection[T]
	settings
}

func NewCRUD[T store.Document](noun string, col *repo.Collection[T], opts ...Option) *CRUD[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &CRUD[T]{noun: noun, col: col, settings: s}
}

// Noun returns the client-facing resource name.
func (s *CRUD[T]) Noun() string { return s.noun }

// List returns every document, newest sort key first.
func (s *CRUD[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.col.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list "+s.col.Kind())
	}
	return items, nil
}

// ListWhere returns the documents keep accepts, preserving list order.
func (s *CRUD[T]) ListWhere(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *CRUD[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	item, err := s.col.Find(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return zero, s.errNotFound()
		}
		return zero, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+s.col.Kind())
	}
	return item, nil
}

// Create assigns identity and creation time, then persists the document.
func (s *CRUD[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	item.SetDocID(uuid.New())
	item.SetDocCreatedAt(s.clock().UTC())

	if err := s.col.Save(ctx, item); err != nil {
		return zero, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save "+s.col.Kind())
	}
	s.metrics.IncrementWrite(s.col.Kind(), "create")
	s.logger.InfoContext(ctx, "document created", "kind", s.col.Kind(), "id", item.DocID())
	return item, nil
}

// Replace swaps the whole document. build receives the current document
// and returns the replacement; identity and creation time always carry
// over from the current document.
func (s *CRUD[T]) Replace(ctx context.Context, id uuid.UUID, build func(prev T) (T, error)) (T, error) {
	var zero T
	prev, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	next, err := build(prev)
	if err != nil {
		return zero, err
	}
	next.SetDocID(id)
	next.SetDocCreatedAt(prev.DocCreatedAt())

	if err := s.col.Save(ctx, next); err != nil {
		return zero, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save "+s.col.Kind())
	}
	s.metrics.IncrementWrite(s.col.Kind(), "update")
	s.logger.InfoContext(ctx, "document replaced", "kind", s.col.Kind(), "id", id)
	return next, nil
}

func (s *CRUD[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.col.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return s.errNotFound()
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete "+s.col.Kind())
	}
	s.metrics.IncrementWrite(s.col.Kind(), "delete")
	s.logger.InfoContext(ctx, "document deleted", "kind", s.col.Kind(), "id", id)
	return nil
}

func (s *CRUD[T]) errNotFound() error {
	return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("%s not found", s.noun))
}
