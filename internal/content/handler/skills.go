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

// Skills adds the category filter route to the generic resource.
type Skills struct {
	*Resource[*models.Skill]
}

func NewSkills(svc *service.CRUD[*models.Skill], uploads *upload.Saver, auth func(http.Handler) http.Handler, logger *slog.Logger) *Skills {
	return &Skills{Resource: NewResource(Config[*models.Skill]{
		Path:        "/api/skills",
		UploadField: "icon",
		Service:     svc,
		Bind:        models.BindSkill,
		Uploads:     uploads,
		Auth:        auth,
		Logger:      logger,
	})}
}

func (h *Skills) Register(r chi.Router) {
	r.Route(h.path, func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/category/{category}", h.handleByCategory)
		r.Get("/{id}", h.handleGet)
		h.registerMutations(r)
	})
}

func (h *Skills) handleByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	skills, err := h.svc.ListWhere(r.Context(), func(s *models.Skill) bool {
		return s.Category == category
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, skills)
}
