// Package httptransport assembles the HTTP surface: global middleware,
// CORS, metrics and static uploads around the per-module handlers.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"folio/internal/platform/middleware"
	"folio/pkg/platform/httputil"
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(chi.Router)
}

// Options configures the router shell.
type Options struct {
	Logger *slog.Logger
	// CORSOrigins lists the allowed browser origins, typically the SPA.
	CORSOrigins []string
	// UploadDir is served read-only under /uploads/.
	UploadDir string
}

// NewRouter builds the full route tree.
func NewRouter(opts Options, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.TokenHeader},
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	if opts.UploadDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
