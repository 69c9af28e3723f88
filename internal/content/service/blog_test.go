package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/content/models"
	"folio/internal/content/repo"
	"folio/internal/content/service"
	"folio/internal/content/store"
	dErrors "folio/pkg/domain-errors"
)

func blogService() *service.Blog {
	col := repo.NewCollection(store.NewInMemory(), models.KindBlogPost,
		func() *models.BlogPost { return &models.BlogPost{} })
	return service.NewBlog(col, service.WithLogger(testLogger()))
}

func TestBlogPublicList_HidesDrafts(t *testing.T) {
	ctx := context.Background()
	svc := blogService()

	_, err := svc.Create(ctx, &models.BlogPost{Title: "Live", Slug: "live", Content: "x", Published: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.BlogPost{Title: "Draft", Slug: "draft", Content: "x"})
	require.NoError(t, err)

	public, err := svc.PublicList(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "live", public[0].Slug)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "the admin list includes drafts")
}

func TestBlogBySlug(t *testing.T) {
	ctx := context.Background()
	svc := blogService()

	created, err := svc.Create(ctx, &models.BlogPost{Title: "Hello", Slug: "hello-world", Content: "x"})
	require.NoError(t, err)

	post, err := svc.BySlug(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, created.ID, post.ID)

	_, err = svc.BySlug(ctx, "no-such-slug")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
