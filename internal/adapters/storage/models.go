package storage

import (
	"strings"
	"time"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// projectRecord is the persistence model for locally curated projects.
// Tags are stored as a comma-separated list to keep the schema flat.
type projectRecord struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	Tags        string
	GitHubURL   string `gorm:"column:github_url"`
	DemoURL     string `gorm:"column:demo_url"`
	ImageURL    string `gorm:"column:image_url"`
	Language    string
	Featured    bool      `gorm:"index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (projectRecord) TableName() string { return "projects" }

// contactRecord is the persistence model for contact form submissions.
type contactRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Message   string `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (contactRecord) TableName() string { return "contact_submissions" }

// toDomain converts a project record to the domain entity.
func (r *projectRecord) toDomain() domain.Project {
	var tags []string
	if r.Tags != "" {
		tags = strings.Split(r.Tags, ",")
	}

	return domain.Project{
		Name:        r.Name,
		Description: r.Description,
		Tags:        tags,
		GitHubURL:   r.GitHubURL,
		DemoURL:     r.DemoURL,
		ImageURL:    r.ImageURL,
		Language:    r.Language,
		Featured:    r.Featured,
		Source:      domain.SourceLocal,
		UpdatedAt:   r.UpdatedAt,
	}
}

// newProjectRecord converts a domain project to its persistence model.
func newProjectRecord(p *domain.Project) projectRecord {
	return projectRecord{
		Name:        p.Name,
		Description: p.Description,
		Tags:        strings.Join(p.Tags, ","),
		GitHubURL:   p.GitHubURL,
		DemoURL:     p.DemoURL,
		ImageURL:    p.ImageURL,
		Language:    p.Language,
		Featured:    p.Featured,
	}
}

// newContactRecord converts a domain submission to its persistence model.
func newContactRecord(s *domain.ContactSubmission) contactRecord {
	return contactRecord{
		Name:      s.Name,
		Email:     s.Email,
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
	}
}
