package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/content/service"
	"folio/internal/upload"
	"folio/pkg/platform/httputil"
)

// Profile serves the bio singleton: public read, authenticated replace, no
// id in either route.
type Profile struct {
	svc     *service.Profile
	uploads *upload.Saver
	auth    func(http.Handler) http.Handler
	logger  *slog.Logger
}

func NewProfile(svc *service.Profile, uploads *upload.Saver, auth func(http.Handler) http.Handler, logger *slog.Logger) *Profile {
	return &Profile{svc: svc, uploads: uploads, auth: auth, logger: logger}
}

func (h *Profile) Register(r chi.Router) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", h.handleGet)
		r.With(h.auth).Put("/", h.handleUpdate)
	})
}

func (h *Profile) handleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Get(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Profile) handleUpdate(w http.ResponseWriter, r *http.Request) {
	form, attachment, err := parseForm(r, h.uploads, "profileImage")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	profile, err := h.svc.Update(r.Context(), form, attachment)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}
