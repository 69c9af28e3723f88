package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/content/models"
	"folio/internal/content/service"
	"folio/internal/upload"
	"folio/pkg/platform/httputil"
)

// Blog replaces the read side of the generic resource: the public list
// hides drafts, /admin shows everything, and single posts resolve by slug
// rather than id.
type Blog struct {
	*Resource[*models.BlogPost]
	svc *service.Blog
}

func NewBlog(svc *service.Blog, uploads *upload.Saver, auth func(http.Handler) http.Handler, logger *slog.Logger) *Blog {
	res := NewResource(Config[*models.BlogPost]{
		Path:        "/api/blog",
		UploadField: "featuredImage",
		Service:     svc.CRUD,
		Bind:        models.BindBlogPost,
		Uploads:     uploads,
		Auth:        auth,
		Logger:      logger,
	})
	// Mutations address posts by id on the same path segment the public
	// GET uses for slugs; chi requires one parameter name per segment.
	res.idParam = "slug"
	return &Blog{Resource: res, svc: svc}
}

func (h *Blog) Register(r chi.Router) {
	r.Route(h.path, func(r chi.Router) {
		r.Get("/", h.handlePublicList)
		r.With(h.auth).Get("/admin", h.handleAdminList)
		r.Get("/{slug}", h.handleBySlug)
		h.registerMutations(r)
	})
}

func (h *Blog) handlePublicList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.PublicList(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, posts)
}

func (h *Blog) handleAdminList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, posts)
}

func (h *Blog) handleBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.BySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, post)
}
