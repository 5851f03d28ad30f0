package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// stubContactStore is a test double for ports.ContactStore.
type stubContactStore struct {
	saved []*domain.ContactSubmission
	err   error
}

func (s *stubContactStore) SaveSubmission(_ context.Context, submission *domain.ContactSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, submission)
	return nil
}

// stubMailer is a test double for ports.Mailer.
type stubMailer struct {
	sent []*domain.ContactSubmission
	err  error
}

func (s *stubMailer) SendContactNotification(_ context.Context, submission *domain.ContactSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, submission)
	return nil
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, I'd like to talk about a project.",
	}
}

func TestContactService_Submit(t *testing.T) {
	store := &stubContactStore{}
	mailer := &stubMailer{}

	svc := NewContactService(ContactServiceConfig{Store: store, Mailer: mailer})
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	submission := validSubmission()
	require.NoError(t, svc.Submit(context.Background(), submission))

	require.Len(t, store.saved, 1)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), submission.CreatedAt)
}

func TestContactService_Submit_InvalidInput(t *testing.T) {
	store := &stubContactStore{}
	mailer := &stubMailer{}

	svc := NewContactService(ContactServiceConfig{Store: store, Mailer: mailer})

	err := svc.Submit(context.Background(), &domain.ContactSubmission{
		Name:    "Jane",
		Email:   "not-an-email",
		Message: "hi",
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, store.saved)
	assert.Empty(t, mailer.sent)
}

func TestContactService_Submit_StoreFailure(t *testing.T) {
	mailer := &stubMailer{}

	svc := NewContactService(ContactServiceConfig{
		Store:  &stubContactStore{err: errors.New("disk full")},
		Mailer: mailer,
	})

	err := svc.Submit(context.Background(), validSubmission())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Empty(t, mailer.sent, "mail should not be attempted when persistence fails")
}

func TestContactService_Submit_MailFailureAfterPersist(t *testing.T) {
	store := &stubContactStore{}

	svc := NewContactService(ContactServiceConfig{
		Store:  store,
		Mailer: &stubMailer{err: domain.NewUnavailableError("smtp", "connection refused")},
	})

	err := svc.Submit(context.Background(), validSubmission())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Len(t, store.saved, 1, "submission must be stored even when mail fails")
}

func TestContactService_Submit_MailDisabled(t *testing.T) {
	store := &stubContactStore{}

	svc := NewContactService(ContactServiceConfig{Store: store})

	require.NoError(t, svc.Submit(context.Background(), validSubmission()))
	assert.Len(t, store.saved, 1)
}
