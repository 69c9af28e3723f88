package notify

import (
	"context"
	"log/slog"
	"time"

	"folio/internal/platform/metrics"
)

const (
	defaultBuffer  = 64
	maxAttempts    = 3
	initialBackoff = 2 * time.Second
)

// Outbox queues notifications for background delivery. Enqueue never
// blocks: when the buffer is full the notification is dropped and logged,
// because the stored message is the durable record and the email is only a
// heads-up.
type Outbox struct {
	mailer  Mailer
	inbox   chan Message
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type OutboxOption func(*Outbox)

func WithLogger(logger *slog.Logger) OutboxOption {
	return func(o *Outbox) { o.logger = logger }
}

func WithMetrics(m *metrics.Metrics) OutboxOption {
	return func(o *Outbox) { o.metrics = m }
}

func WithBuffer(n int) OutboxOption {
	return func(o *Outbox) { o.inbox = make(chan Message, n) }
}

func NewOutbox(mailer Mailer, opts ...OutboxOption) *Outbox {
	o := &Outbox{
		mailer: mailer,
		inbox:  make(chan Message, defaultBuffer),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Enqueue hands a notification to the worker without blocking.
func (o *Outbox) Enqueue(msg Message) {
	select {
	case o.inbox <- msg:
	default:
		o.logger.Warn("notification outbox full, dropping", "subject", msg.Subject)
	}
}

// Run consumes the outbox until ctx is cancelled.
func (o *Outbox) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-o.inbox:
			o.deliver(ctx, msg)
		}
	}
}

// deliver retries with doubling backoff and gives up after maxAttempts;
// the message itself is already persisted, so exhausting retries only
// loses the email.
func (o *Outbox) deliver(ctx context.Context, msg Message) {
	backoff := initialBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if o.metrics != nil {
			o.metrics.RelayAttempts.Inc()
		}
		err := o.mailer.Send(ctx, msg)
		if err == nil {
			o.logger.Info("contact notification relayed", "subject", msg.Subject, "attempt", attempt)
			return
		}
		o.logger.Warn("contact notification failed",
			"subject", msg.Subject,
			"attempt", attempt,
			"error", err,
		)
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	if o.metrics != nil {
		o.metrics.RelayFailures.Inc()
	}
}
