package domain

import (
	"net/mail"
	"strings"
	"time"
)

// ContactSubmission is a message left through the contact form.
// It is created on form submission, forwarded to the mailer, and kept in
// the local store for reference. It has no lifecycle beyond that.
type ContactSubmission struct {
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Validate checks field presence and that the email address is well formed.
// Returns a ValidationError naming the first offending field.
func (c *ContactSubmission) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "name is required")
	}

	if strings.TrimSpace(c.Email) == "" {
		return NewValidationError("email", "email is required")
	}

	if _, err := mail.ParseAddress(c.Email); err != nil {
		return NewValidationError("email", "email address is not valid")
	}

	if strings.TrimSpace(c.Message) == "" {
		return NewValidationError("message", "message is required")
	}

	return nil
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
