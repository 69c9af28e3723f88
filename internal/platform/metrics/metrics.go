package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ContentWrites    *prometheus.CounterVec
	Logins           prometheus.Counter
	MessagesReceived prometheus.Counter
	RelayAttempts    prometheus.Counter
	RelayFailures    prometheus.Counter
}

// New creates and registers all metrics on the given registerer. Pass a
// fresh prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ContentWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_content_writes_total",
			Help: "Content documents created, updated or deleted, by resource and operation",
		}, []string{"resource", "op"}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_logins_total",
			Help: "Successful admin logins",
		}),
		MessagesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_contact_messages_total",
			Help: "Contact messages accepted and persisted",
		}),
		RelayAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_relay_attempts_total",
			Help: "Outbound contact notification delivery attempts",
		}),
		RelayFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_relay_failures_total",
			Help: "Outbound contact notifications that exhausted retries",
		}),
	}
}

// IncrementWrite records one mutating operation against a resource.
func (m *Metrics) IncrementWrite(resource, op string) {
	if m == nil {
		return
	}
	m.ContentWrites.WithLabelValues(resource, op).Inc()
}
