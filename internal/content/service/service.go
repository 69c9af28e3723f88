// Package service implements the content use cases on top of the typed
// collections: one generic CRUD core shared by every resource, plus the
// blog, contact, profile and LeetCode services layered over it.
package service

import (
	"log/slog"
	"time"

	"folio/internal/platform/metrics"
)

type settings struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	clock   func() time.Time
}

func defaultSettings() settings {
	return settings{logger: slog.Default(), clock: time.Now}
}

type Option func(*settings)

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithClock overrides the time source for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) { s.clock = clock }
}
