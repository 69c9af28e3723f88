package service

import (
	"context"
	"errors"

	"folio/internal/content/models"
	"folio/internal/content/repo"
	dErrors "folio/pkg/domain-errors"
	"folio/pkg/platform/sentinel"
)

// Profile manages the bio singleton. Reads materialize a default document
// on first access; updates upsert, so the singleton can never be missing
// or duplicated.
type Profile struct {
	col *repo.Collection[*models.Profile]
	settings
}

func NewProfile(col *repo.Collection[*models.Profile], opts ...Option) *Profile {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Profile{col: col, settings: s}
}

// Get returns the profile, creating and persisting the default document
// when none exists yet.
func (s *Profile) Get(ctx context.Context) (*models.Profile, error) {
	profile, err := s.col.Find(ctx, models.ProfileID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	profile = models.DefaultProfile()
	profile.ID = models.ProfileID
	now := s.clock().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if err := s.col.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}
	s.logger.InfoContext(ctx, "default profile created")
	return profile, nil
}

// Update replaces the profile from form input, creating it when absent.
func (s *Profile) Update(ctx context.Context, f models.Form, attachment string) (*models.Profile, error) {
	prev, err := s.col.Find(ctx, models.ProfileID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	if err != nil {
		prev = nil
	}

	next, err := models.BindProfile(f, attachment, prev)
	if err != nil {
		return nil, err
	}
	next.ID = models.ProfileID
	if prev != nil {
		next.CreatedAt = prev.CreatedAt
	} else {
		next.CreatedAt = s.clock().UTC()
	}

	if err := s.col.Save(ctx, next); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}
	s.metrics.IncrementWrite(models.KindProfile, "update")
	return next, nil
}
