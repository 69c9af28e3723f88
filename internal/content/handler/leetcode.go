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

// LeetCode adds the stats route to the generic resource. /stats registers
// before /{id} so the static segment wins the match.
type LeetCode struct {
	*Resource[*models.LeetCodeEntry]
	svc *service.LeetCode
}

func NewLeetCode(svc *service.LeetCode, uploads *upload.Saver, auth func(http.Handler) http.Handler, logger *slog.Logger) *LeetCode {
	res := NewResource(Config[*models.LeetCodeEntry]{
		Path:    "/api/leetcode-progress",
		Service: svc.CRUD,
		Bind:    models.BindLeetCodeEntry,
		Uploads: uploads,
		Auth:    auth,
		Logger:  logger,
	})
	return &LeetCode{Resource: res, svc: svc}
}

func (h *LeetCode) Register(r chi.Router) {
	r.Route(h.path, func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/stats", h.handleStats)
		r.Get("/{id}", h.handleGet)
		h.registerMutations(r)
	})
}

func (h *LeetCode) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}
