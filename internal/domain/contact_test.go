package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmission_Validate(t *testing.T) {
	tests := []struct {
		name       string
		submission ContactSubmission
		wantField  string
	}{
		{
			name: "valid submission",
			submission: ContactSubmission{
				Name:    "Jane Visitor",
				Email:   "jane@example.com",
				Message: "Hello, nice site!",
			},
		},
		{
			name: "valid submission with display name address",
			submission: ContactSubmission{
				Name:    "Jane Visitor",
				Email:   "Jane Visitor <jane@example.com>",
				Message: "Hello",
			},
		},
		{
			name: "missing name",
			submission: ContactSubmission{
				Email:   "jane@example.com",
				Message: "Hello",
			},
			wantField: "name",
		},
		{
			name: "whitespace-only name",
			submission: ContactSubmission{
				Name:    "   ",
				Email:   "jane@example.com",
				Message: "Hello",
			},
			wantField: "name",
		},
		{
			name: "missing email",
			submission: ContactSubmission{
				Name:    "Jane",
				Message: "Hello",
			},
			wantField: "email",
		},
		{
			name: "malformed email",
			submission: ContactSubmission{
				Name:    "Jane",
				Email:   "not-an-address",
				Message: "Hello",
			},
			wantField: "email",
		},
		{
			name: "email missing domain",
			submission: ContactSubmission{
				Name:    "Jane",
				Email:   "jane@",
				Message: "Hello",
			},
			wantField: "email",
		},
		{
			name: "missing message",
			submission: ContactSubmission{
				Name:  "Jane",
				Email: "jane@example.com",
			},
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.submission.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestProject_MatchesSearch(t *testing.T) {
	project := Project{
		Name:        "Weather Forecast App",
		Description: "Real-time weather with location-based forecasts",
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term matches", term: "", want: true},
		{name: "name match", term: "weather", want: true},
		{name: "name match mixed case", term: "WEATHER", want: true},
		{name: "description match", term: "forecasts", want: true},
		{name: "no match", term: "kubernetes", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, project.MatchesSearch(tt.term))
		})
	}
}
