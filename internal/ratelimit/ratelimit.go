// Package ratelimit throttles the public contact endpoint per client IP.
// Counters live in an in-process TTL cache; state resets on restart, which
// is acceptable for a single-instance deployment.
package ratelimit

import (
	"log/slog"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"folio/internal/platform/middleware"
	"folio/pkg/platform/httputil"
)

// Limiter counts requests per key in fixed windows.
type Limiter struct {
	counters *gocache.Cache
	limit    int
	window   time.Duration
	logger   *slog.Logger
}

// New builds a limiter allowing limit requests per window. limit <= 0
// disables limiting.
func New(limit int, window time.Duration, logger *slog.Logger) *Limiter {
	return &Limiter{
		counters: gocache.New(window, 2*window),
		limit:    limit,
		window:   window,
		logger:   logger,
	}
}

// Allow records one request for key and reports whether it fits the
// window. The limiter fails open: a cache anomaly counts as allowed.
func (l *Limiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}
	if err := l.counters.Add(key, 1, l.window); err == nil {
		return l.limit >= 1
	}
	count, err := l.counters.IncrementInt(key, 1)
	if err != nil {
		// Entry expired between Add and Increment; treat as a fresh window.
		return true
	}
	return count <= l.limit
}

// Middleware rejects over-limit requests with 429 before they reach the
// handler.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := middleware.ClientIPFromRequest(r)
		if !l.Allow(ip) {
			l.logger.WarnContext(r.Context(), "rate limit exceeded", "ip", ip, "path", r.URL.Path)
			httputil.WriteJSON(w, http.StatusTooManyRequests, map[string]string{
				"error":             "rate_limited",
				"error_description": "too many requests, slow down",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
