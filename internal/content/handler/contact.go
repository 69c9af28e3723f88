package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"folio/internal/content/service"
	dErrors "folio/pkg/domain-errors"
	"folio/pkg/platform/httputil"
)

// Contact serves the public submission endpoint and the authenticated
// inbox. Submission returns as soon as the message is stored; the email
// relay runs in the background.
type Contact struct {
	svc    *service.Contact
	auth   func(http.Handler) http.Handler
	limit  func(http.Handler) http.Handler
	logger *slog.Logger
}

// NewContact builds the handler; limit throttles the public endpoint and
// may be nil to disable throttling.
func NewContact(svc *service.Contact, auth, limit func(http.Handler) http.Handler, logger *slog.Logger) *Contact {
	return &Contact{svc: svc, auth: auth, limit: limit, logger: logger}
}

func (h *Contact) Register(r chi.Router) {
	r.Route("/api/contact", func(r chi.Router) {
		if h.limit != nil {
			r.With(h.limit).Post("/", h.handleSubmit)
		} else {
			r.Post("/", h.handleSubmit)
		}
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.handleList)
			r.Put("/{id}", h.handleMarkRead)
			r.Delete("/{id}", h.handleDelete)
		})
	})
}

func (h *Contact) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if _, err := h.svc.Submit(r.Context(), req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"msg": "Message sent successfully"})
}

func (h *Contact) handleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messages)
}

func (h *Contact) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := h.messageID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	msg, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, msg)
}

func (h *Contact) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := h.messageID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"msg": "Message removed"})
}

func (h *Contact) messageID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeNotFound, "Message not found")
	}
	return id, nil
}
