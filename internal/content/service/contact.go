package service

import (
	"context"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"folio/internal/content/models"
	"folio/internal/content/repo"
	"folio/internal/notify"
	dErrors "folio/pkg/domain-errors"
)

// Enqueuer hands a submission to the notification outbox. The contact
// service never waits on delivery; a full or failing relay must not affect
// the caller.
type Enqueuer interface {
	Enqueue(msg notify.Message)
}

// SubmitRequest is the public contact-form payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact persists contact-form submissions and relays them by email.
type Contact struct {
	*CRUD[*models.Message]
	outbox Enqueuer
}

func NewContact(col *repo.Collection[*models.Message], outbox Enqueuer, opts ...Option) *Contact {
	return &Contact{CRUD: NewCRUD("Message", col, opts...), outbox: outbox}
}

// Submit validates and stores a submission, then queues the email relay.
// The message is durable once this returns; relay happens in the
// background and its failure is invisible to the submitter.
func (s *Contact) Submit(ctx context.Context, req SubmitRequest) (*models.Message, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "please enter all fields")
	}
	if !govalidator.IsEmail(req.Email) {
		return nil, dErrors.New(dErrors.CodeValidation, "please enter a valid email")
	}

	msg, err := s.Create(ctx, &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.MessagesReceived.Inc()
	}
	if s.outbox != nil {
		s.outbox.Enqueue(notify.Message{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Body:    msg.Body,
		})
	}
	return msg, nil
}

// MarkRead flips the read flag on; every other field is untouched.
func (s *Contact) MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	return s.Replace(ctx, id, func(prev *models.Message) (*models.Message, error) {
		next := *prev
		next.Read = true
		return &next, nil
	})
}
