// Package storage persists projects and contact submissions in a local
// SQLite database.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// Store provides access to the local SQLite database.
// Implements ports.ProjectStore, ports.ContactStore, and ports.HealthChecker.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the SQLite database at path and runs
// pending schema migrations.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "storage.Store"))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &Store{db: db, logger: logger}

	if err := store.migrate(); err != nil {
		return nil, err
	}

	return store, nil
}

// migrate applies pending schema migrations.
func (s *Store) migrate() error {
	m := gormigrate.New(s.db, gormigrate.DefaultOptions, migrations())

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	s.logger.Debug("schema migrations applied")

	return nil
}

// ListProjects returns all locally stored projects, featured first, then by
// most recent update.
// Implements ports.ProjectStore.
func (s *Store) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var records []projectRecord

	err := s.db.WithContext(ctx).
		Order("featured DESC, updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(records))
	for i := range records {
		projects = append(projects, records[i].toDomain())
	}

	return projects, nil
}

// SaveProject inserts a project or updates the existing row with the same name.
// Implements ports.ProjectStore.
func (s *Store) SaveProject(ctx context.Context, project *domain.Project) error {
	if project.Name == "" {
		return domain.NewValidationError("name", "must not be empty")
	}

	record := newProjectRecord(project)

	err := s.db.WithContext(ctx).
		Where("name = ?", record.Name).
		Assign(map[string]any{
			"description": record.Description,
			"tags":        record.Tags,
			"github_url":  record.GitHubURL,
			"demo_url":    record.DemoURL,
			"image_url":   record.ImageURL,
			"language":    record.Language,
			"featured":    record.Featured,
		}).
		FirstOrCreate(&record).Error
	if err != nil {
		return fmt.Errorf("saving project %q: %w", project.Name, err)
	}

	return nil
}

// SaveSubmission persists a contact form submission.
// Implements ports.ContactStore.
func (s *Store) SaveSubmission(ctx context.Context, submission *domain.ContactSubmission) error {
	record := newContactRecord(submission)

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("saving contact submission: %w", err)
	}

	s.logger.InfoContext(ctx, "contact submission stored",
		slog.Uint64("id", uint64(record.ID)),
	)

	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Name returns the health check name for the store.
// Implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// Check verifies database connectivity.
// Implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
