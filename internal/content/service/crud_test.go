package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content/models"
	"folio/internal/content/repo"
	"folio/internal/content/service"
	"folio/internal/content/store"
	dErrors "folio/pkg/domain-errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func projectService(clock func() time.Time) *service.CRUD[*models.Project] {
	col := repo.NewCollection(store.NewInMemory(), models.KindProject, func() *models.Project { return &models.Project{} })
	opts := []service.Option{service.WithLogger(testLogger())}
	if clock != nil {
		opts = append(opts, service.WithClock(clock))
	}
	return service.NewCRUD("Project", col, opts...)
}

func TestCRUD_CreateAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	svc := projectService(func() time.Time { return now })

	created, err := svc.Create(ctx, &models.Project{Title: "Folio", Description: "backend"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, now, created.CreatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Folio", got.Title)
}

func TestCRUD_GetUnknownID(t *testing.T) {
	svc := projectService(nil)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.Contains(t, err.Error(), "Project not found")
}

func TestCRUD_ReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	svc := projectService(nil)

	created, err := svc.Create(ctx, &models.Project{
		Title:       "Folio",
		Description: "backend",
		TechStack:   []string{"Go", "Postgres"},
		GithubURL:   "https://github.com/asad/folio",
		Featured:    true,
	})
	require.NoError(t, err)

	// The replacement carries only title and description; every other
	// field resets rather than merging with the stored document.
	updated, err := svc.Replace(ctx, created.ID, func(prev *models.Project) (*models.Project, error) {
		return models.BindProject(models.Form{
			"title":       "Folio v2",
			"description": "rewritten",
		}, "", prev)
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "identity survives replace")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "creation time survives replace")
	assert.Equal(t, "Folio v2", updated.Title)
	assert.Empty(t, updated.TechStack)
	assert.Empty(t, updated.GithubURL)
	assert.False(t, updated.Featured)
}

func TestCRUD_ReplacePreservesAttachment(t *testing.T) {
	ctx := context.Background()
	svc := projectService(nil)

	created, err := svc.Create(ctx, &models.Project{Title: "Folio", Description: "x", Image: "/uploads/1.png"})
	require.NoError(t, err)

	updated, err := svc.Replace(ctx, created.ID, func(prev *models.Project) (*models.Project, error) {
		return models.BindProject(models.Form{"title": "Folio", "description": "x"}, "", prev)
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1.png", updated.Image, "image is the one field that survives without a new upload")
}

func TestCRUD_ReplaceUnknownID(t *testing.T) {
	svc := projectService(nil)
	_, err := svc.Replace(context.Background(), uuid.New(), func(prev *models.Project) (*models.Project, error) {
		return prev, nil
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestCRUD_ReplaceBinderErrorLeavesDocumentIntact(t *testing.T) {
	ctx := context.Background()
	svc := projectService(nil)

	created, err := svc.Create(ctx, &models.Project{Title: "Folio", Description: "x"})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, created.ID, func(prev *models.Project) (*models.Project, error) {
		return models.BindProject(models.Form{"description": "missing title"}, "", prev)
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Folio", got.Title)
}

func TestCRUD_Delete(t *testing.T) {
	ctx := context.Background()
	svc := projectService(nil)

	created, err := svc.Create(ctx, &models.Project{Title: "Folio", Description: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestCRUD_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc := projectService(func() time.Time {
		tick++
		return now.Add(time.Duration(tick) * time.Hour)
	})

	first, err := svc.Create(ctx, &models.Project{Title: "first", Description: "x"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &models.Project{Title: "second", Description: "x"})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}
