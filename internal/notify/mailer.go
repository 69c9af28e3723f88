// Package notify relays contact-form submissions by email. Handlers never
// send directly; they enqueue onto the Outbox and a background worker
// delivers, so a slow or dead SMTP server cannot stall a request.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// Message is one contact submission to relay.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Mailer delivers one notification.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers over authenticated SMTP. The envelope sender is the
// configured account; the submitter's address goes on Reply-To so the
// owner can answer directly.
type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	recipient string
}

func NewSMTPMailer(host string, port int, username, password, recipient string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password, recipient: recipient}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.From(m.username); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := mm.To(m.recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if err := mm.ReplyTo(msg.Email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	mm.Subject("Portfolio Contact: " + msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", msg.Name, msg.Email, msg.Body))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// LogMailer stands in when no SMTP relay is configured: submissions are
// still persisted and the notification is logged instead of sent.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.InfoContext(ctx, "contact notification (no relay configured)",
		"from", msg.Email,
		"subject", msg.Subject,
	)
	return nil
}
