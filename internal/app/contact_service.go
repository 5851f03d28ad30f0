package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/ports"
)

// ContactService handles contact form submissions: validate, persist, then
// notify the site owner by email.
type ContactService struct {
	store  ports.ContactStore
	mailer ports.Mailer
	logger *slog.Logger

	// now is overridable for testing.
	now func() time.Time
}

// ContactServiceConfig contains configuration for the contact service.
type ContactServiceConfig struct {
	Store ports.ContactStore

	// Mailer is optional. When nil (SMTP disabled), submissions are stored
	// but no email is sent.
	Mailer ports.Mailer

	Logger *slog.Logger
}

// NewContactService creates a new contact service with the provided dependencies.
func NewContactService(cfg ContactServiceConfig) *ContactService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactService{
		store:  cfg.Store,
		mailer: cfg.Mailer,
		logger: logger,
		now:    time.Now,
	}
}

// Submit validates and records a contact form submission.
// The submission is persisted before the notification email is attempted, so
// a mail outage never loses a message. Returns domain.ErrValidation for bad
// input and domain.ErrUnavailable when persistence fails.
func (s *ContactService) Submit(ctx context.Context, submission *domain.ContactSubmission) error {
	if err := submission.Validate(); err != nil {
		s.logger.DebugContext(ctx, "rejected contact submission",
			slog.Any("error", err),
		)
		return err
	}

	submission.CreatedAt = s.now().UTC()

	if err := s.store.SaveSubmission(ctx, submission); err != nil {
		s.logger.ErrorContext(ctx, "failed to store contact submission",
			slog.Any("error", err),
		)
		return domain.NewUnavailableError("contact-store", err.Error())
	}

	if s.mailer == nil {
		s.logger.InfoContext(ctx, "contact submission stored, mail disabled")
		return nil
	}

	if err := s.mailer.SendContactNotification(ctx, submission); err != nil {
		// The submission is already stored; surface the mail failure so the
		// caller can tell the visitor delivery may be delayed.
		s.logger.ErrorContext(ctx, "failed to send contact notification",
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "contact submission processed",
		slog.String("email", submission.Email),
	)

	return nil
}
