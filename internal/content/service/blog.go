package service

import (
	"context"

	"folio/internal/content/models"
	"folio/internal/content/repo"
	dErrors "folio/pkg/domain-errors"
)

// Blog adds the published/unpublished split and slug lookup on top of the
// generic post CRUD.
type Blog struct {
	*CRUD[*models.BlogPost]
}

func NewBlog(col *repo.Collection[*models.BlogPost], opts ...Option) *Blog {
	return &Blog{CRUD: NewCRUD("Blog post", col, opts...)}
}

// PublicList returns published posts only, newest first.
func (s *Blog) PublicList(ctx context.Context) ([]*models.BlogPost, error) {
	return s.ListWhere(ctx, func(p *models.BlogPost) bool { return p.Published })
}

// BySlug finds a post by its slug. Drafts resolve too; the slug route is
// how the admin previews unpublished posts.
func (s *Blog) BySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "Blog post not found")
}
