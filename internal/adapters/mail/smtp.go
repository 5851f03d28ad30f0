// Package mail sends contact-form notification email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/platform/config"
)

// localCapturePort is the conventional MailHog/Mailpit SMTP port.
const localCapturePort = 1025

// Mailer sends contact notifications through an SMTP relay.
// It detects local capture tools (MailHog, Mailpit) and skips TLS and
// authentication when talking to them, matching how they are run in
// development.
type Mailer struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
}

// NewMailer creates an SMTP mailer from configuration.
func NewMailer(cfg config.SMTPConfig, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Mailer{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "mail.Mailer")),
	}
}

// SendContactNotification delivers the submission to the configured recipient.
// Implements ports.Mailer.
func (m *Mailer) SendContactNotification(ctx context.Context, submission *domain.ContactSubmission) error {
	msg := gomail.NewMsg()

	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}

	if err := msg.To(m.cfg.ContactEmail); err != nil {
		return fmt.Errorf("setting recipient address: %w", err)
	}

	if err := msg.ReplyTo(submission.Email); err != nil {
		return fmt.Errorf("setting reply-to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Portfolio contact from %s", submission.Name))
	msg.SetBodyString(gomail.TypeTextPlain, m.buildBody(submission))

	client, err := m.newClient()
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "failed to send contact notification",
			slog.String("host", m.cfg.Host),
			slog.Any("error", err),
		)
		return domain.NewUnavailableError("smtp", err.Error())
	}

	m.logger.InfoContext(ctx, "contact notification sent",
		slog.String("recipient", m.cfg.ContactEmail),
	)

	return nil
}

// newClient builds the SMTP client for the configured relay.
func (m *Mailer) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTimeout(10 * time.Second),
	}

	if m.isLocalCapture() {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	} else {
		opts = append(opts,
			gomail.WithTLSPolicy(gomail.TLSMandatory),
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	return gomail.NewClient(m.cfg.Host, opts...)
}

// isLocalCapture reports whether the relay looks like a local mail capture
// tool rather than a real SMTP server.
func (m *Mailer) isLocalCapture() bool {
	if m.cfg.Port != localCapturePort {
		return false
	}

	host := strings.ToLower(m.cfg.Host)

	return host == "mailhog" || host == "mailpit" || host == "localhost" || host == "127.0.0.1"
}

// buildBody renders the plain-text notification body.
func (m *Mailer) buildBody(submission *domain.ContactSubmission) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New contact form submission\n\n")
	fmt.Fprintf(&b, "Name: %s\n", submission.Name)
	fmt.Fprintf(&b, "Email: %s\n", submission.Email)
	fmt.Fprintf(&b, "Received: %s\n\n", submission.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Message:\n%s\n", submission.Message)

	return b.String()
}
