// Package ports defines interfaces for the application's external
// dependencies. Adapters implement these contracts so the application layer
// depends on abstractions, not concrete integrations.
//
// Port conventions:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never external DTOs
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, ...)
package ports

import (
	"context"
	"time"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// RepositoryLister fetches the public repository listing for the configured
// user from the code-hosting API.
type RepositoryLister interface {
	// ListRepositories returns the user's public repositories as projects,
	// most recently updated first, forks excluded.
	// Returns domain.ErrUnavailable if the API is unreachable.
	ListRepositories(ctx context.Context) ([]domain.Project, error)

	// RepositoryLanguages returns the byte counts per language for one
	// repository. Returns domain.ErrNotFound for an unknown repository.
	RepositoryLanguages(ctx context.Context, repo string) (map[string]int64, error)
}

// ProjectStore reads and writes locally curated project metadata.
type ProjectStore interface {
	// ListProjects returns all stored projects, featured entries first.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// SaveProject persists a project entry. Last write wins.
	SaveProject(ctx context.Context, project *domain.Project) error
}

// ContactStore persists contact form submissions.
type ContactStore interface {
	// SaveSubmission records a submission before it is forwarded to mail.
	SaveSubmission(ctx context.Context, submission *domain.ContactSubmission) error
}

// Mailer dispatches outbound email for the contact form.
type Mailer interface {
	// SendContactNotification delivers the submission to the site owner.
	// Returns domain.ErrUnavailable if delivery fails.
	SendContactNotification(ctx context.Context, submission *domain.ContactSubmission) error
}

// Cache stores the last successful response from an external source.
// Implementations may be in-memory or Redis; there is no eviction policy
// beyond TTL expiry.
type Cache interface {
	// Get retrieves a value. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ResumeRenderer produces a downloadable document from resume content.
type ResumeRenderer interface {
	// RenderPDF renders the resume as PDF bytes.
	RenderPDF(resume *domain.Resume) ([]byte, error)
}
