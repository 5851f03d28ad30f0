package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("project", "weather-app")

	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "project")
	assert.Contains(t, err.Error(), "weather-app")
}

func TestNotFoundError_NoID(t *testing.T) {
	err := NewNotFoundError("resume locale", "")

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "resume locale not found", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "email address is not valid")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
	assert.Equal(t, "email address is not valid", validationErr.Message)
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("github", "connection refused")

	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "github")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestUnavailableError_NoReason(t *testing.T) {
	err := NewUnavailableError("smtp", "")

	assert.True(t, IsUnavailable(err))
	assert.Equal(t, `service "smtp" unavailable`, err.Error())
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("health checker", "duplicate name")

	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "duplicate name")
}

func TestSentinelChecks_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("listing projects: %w", NewUnavailableError("github", "timeout"))

	assert.True(t, IsUnavailable(wrapped))
	assert.False(t, IsValidation(wrapped))
}
