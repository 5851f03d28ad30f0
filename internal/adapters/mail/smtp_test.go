package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/platform/config"
)

func TestMailer_IsLocalCapture(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected bool
	}{
		{"mailhog on capture port", "mailhog", 1025, true},
		{"mailpit on capture port", "mailpit", 1025, true},
		{"localhost on capture port", "localhost", 1025, true},
		{"loopback on capture port", "127.0.0.1", 1025, true},
		{"uppercase host", "MailHog", 1025, true},
		{"mailhog on submission port", "mailhog", 587, false},
		{"real relay on capture port", "smtp.gmail.com", 1025, false},
		{"real relay on submission port", "smtp.gmail.com", 587, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMailer(config.SMTPConfig{Host: tt.host, Port: tt.port}, nil)
			assert.Equal(t, tt.expected, m.isLocalCapture())
		})
	}
}

func TestMailer_BuildBody(t *testing.T) {
	m := NewMailer(config.SMTPConfig{}, nil)

	submission := &domain.ContactSubmission{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "Hello!\nGreat site.",
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	body := m.buildBody(submission)

	assert.Contains(t, body, "Name: Jane Doe")
	assert.Contains(t, body, "Email: jane@example.com")
	assert.Contains(t, body, "Received: 2026-05-01T12:00:00Z")
	assert.Contains(t, body, "Hello!\nGreat site.")
}

func TestMailer_SendContactNotification_BadFromAddress(t *testing.T) {
	m := NewMailer(config.SMTPConfig{
		Host:         "mailhog",
		Port:         1025,
		From:         "not-an-address",
		ContactEmail: "me@example.com",
	}, nil)

	err := m.SendContactNotification(t.Context(), &domain.ContactSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "hi",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "setting from address")
}
