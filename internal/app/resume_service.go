package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/ports"
)

// fallbackLocale is served when a requested locale has no resume file.
const fallbackLocale = "en"

// ResumeService loads per-locale resume content from JSON files and renders
// downloadable PDFs. Files are parsed once and cached for the process
// lifetime; resume content only changes with a deploy.
type ResumeService struct {
	localesDir string
	renderer   ports.ResumeRenderer
	logger     *slog.Logger

	mu      sync.Mutex
	resumes map[string]*domain.Resume
}

// ResumeServiceConfig contains configuration for the resume service.
type ResumeServiceConfig struct {
	// LocalesDir is the directory holding <locale>.json resume files.
	LocalesDir string

	Renderer ports.ResumeRenderer
	Logger   *slog.Logger
}

// NewResumeService creates a new resume service with the provided dependencies.
func NewResumeService(cfg ResumeServiceConfig) *ResumeService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ResumeService{
		localesDir: cfg.LocalesDir,
		renderer:   cfg.Renderer,
		logger:     logger,
		resumes:    make(map[string]*domain.Resume),
	}
}

// Resume returns the resume for the requested locale, falling back to
// English when the locale has no resume file. Returns domain.ErrNotFound
// only when the fallback is missing too.
func (s *ResumeService) Resume(ctx context.Context, locale string) (*domain.Resume, error) {
	if locale == "" {
		locale = fallbackLocale
	}

	resume, err := s.load(locale)
	if err == nil {
		return resume, nil
	}

	if !domain.IsNotFound(err) || locale == fallbackLocale {
		return nil, err
	}

	s.logger.DebugContext(ctx, "locale has no resume, using fallback",
		slog.String("locale", locale),
	)

	return s.load(fallbackLocale)
}

// ResumePDF renders the resume for the locale as a PDF document.
func (s *ResumeService) ResumePDF(ctx context.Context, locale string) ([]byte, error) {
	resume, err := s.Resume(ctx, locale)
	if err != nil {
		return nil, err
	}

	output, err := s.renderer.RenderPDF(resume)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render resume pdf",
			slog.String("locale", resume.Locale),
			slog.Any("error", err),
		)
		return nil, err
	}

	return output, nil
}

// load reads and caches the resume file for a locale.
func (s *ResumeService) load(locale string) (*domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resume, ok := s.resumes[locale]; ok {
		return resume, nil
	}

	path := filepath.Join(s.localesDir, locale+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewNotFoundError("resume", locale)
		}
		return nil, fmt.Errorf("reading resume file %s: %w", path, err)
	}

	var resume domain.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("parsing resume file %s: %w", path, err)
	}

	resume.Locale = locale
	s.resumes[locale] = &resume

	return &resume, nil
}
