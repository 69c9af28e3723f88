// Package handler exposes the content resources over HTTP. One generic
// Resource covers the uniform collections; blog, contact, profile and
// LeetCode wrap or replace it where their routes diverge.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/content/models"
	"folio/internal/content/service"
	"folio/internal/content/store"
	"folio/internal/upload"
	dErrors "folio/pkg/domain-errors"
	"folio/pkg/platform/httputil"
)

// Config wires one resource onto the router.
type Config[T store.Document] struct {
	// Path is the mount point, e.g. "/api/projects".
	Path string
	// UploadField names the multipart file field, empty when the resource
	// takes no upload.
	UploadField string
	Service     *service.CRUD[T]
	Bind        models.Binder[T]
	Uploads     *upload.Saver
	// Auth gates every mutating route.
	Auth   func(http.Handler) http.Handler
	Logger *slog.Logger
}

// Resource serves list/get/create/replace/delete for one content type.
type Resource[T store.Document] struct {
	path        string
	uploadField string
	svc         *service.CRUD[T]
	bind        models.Binder[T]
	uploads     *upload.Saver
	auth        func(http.Handler) http.Handler
	logger      *slog.Logger
	// idParam is the chi URL parameter carrying the document id. The blog
	// handler renames it so its slug and id routes can share a segment.
	idParam string
}

func NewResource[T store.Document](cfg Config[T]) *Resource[T] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource[T]{
		path:        cfg.Path,
		uploadField: cfg.UploadField,
		svc:         cfg.Service,
		bind:        cfg.Bind,
		uploads:     cfg.Uploads,
		auth:        cfg.Auth,
		logger:      logger,
		idParam:     "id",
	}
}

// Register mounts the standard route set.
func (h *Resource[T]) Register(r chi.Router) {
	r.Route(h.path, func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{"+h.idParam+"}", h.handleGet)
		h.registerMutations(r)
	})
}

// registerMutations mounts the authenticated write routes; shared with the
// wrapping handlers that replace the read side.
func (h *Resource[T]) registerMutations(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.handleCreate)
		r.Put("/{"+h.idParam+"}", h.handleUpdate)
		r.Delete("/{"+h.idParam+"}", h.handleDelete)
	})
}

func (h *Resource[T]) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Resource[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := h.docID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	form, attachment, err := parseForm(r, h.uploads, h.uploadField)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var prev T
	item, err := h.bind(form, attachment, prev)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), item)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, created)
}

func (h *Resource[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := h.docID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	form, attachment, err := parseForm(r, h.uploads, h.uploadField)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	updated, err := h.svc.Replace(r.Context(), id, func(prev T) (T, error) {
		return h.bind(form, attachment, prev)
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := h.docID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"msg": h.svc.Noun() + " removed"})
}

// docID parses the id path parameter. A malformed id cannot match any
// document, so it reports the same not-found the lookup would.
func (h *Resource[T]) docID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, h.idParam))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeNotFound, h.svc.Noun()+" not found")
	}
	return id, nil
}
