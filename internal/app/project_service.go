// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/ports"
)

// repoCacheKey stores the last successful repository listing.
const repoCacheKey = "github:repos"

// ProjectService assembles the project listing shown on the projects page.
// GitHub repositories are merged with locally curated entries; any upstream
// failure degrades to whatever can still be served, never to an error.
type ProjectService struct {
	lister   ports.RepositoryLister
	store    ports.ProjectStore
	cache    ports.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// ProjectServiceConfig contains configuration for the project service.
type ProjectServiceConfig struct {
	// Lister is optional. When nil, only stored projects are listed.
	Lister ports.RepositoryLister

	Store    ports.ProjectStore
	Cache    ports.Cache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// NewProjectService creates a new project service with the provided dependencies.
func NewProjectService(cfg ProjectServiceConfig) *ProjectService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ProjectService{
		lister:   cfg.Lister,
		store:    cfg.Store,
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// ListProjects returns GitHub repositories followed by locally stored
// projects. A stored project that shares a name with a repository is dropped
// in favor of the repository entry.
func (s *ProjectService) ListProjects(ctx context.Context) []domain.Project {
	remote := s.listRemote(ctx)
	local := s.listLocal(ctx)

	seen := make(map[string]struct{}, len(remote))
	for i := range remote {
		seen[remote[i].Name] = struct{}{}
	}

	merged := remote
	for i := range local {
		if _, dup := seen[local[i].Name]; dup {
			continue
		}
		merged = append(merged, local[i])
	}

	return merged
}

// SearchProjects returns the merged listing filtered by a case-insensitive
// search term matched against name, description, language, and tags.
// An empty term returns the full listing.
func (s *ProjectService) SearchProjects(ctx context.Context, term string) []domain.Project {
	projects := s.ListProjects(ctx)
	if term == "" {
		return projects
	}

	filtered := make([]domain.Project, 0, len(projects))
	for i := range projects {
		if projects[i].MatchesSearch(term) {
			filtered = append(filtered, projects[i])
		}
	}

	return filtered
}

// FeaturedProjects returns up to limit projects for the home page,
// preferring featured local entries, then the most starred repositories.
func (s *ProjectService) FeaturedProjects(ctx context.Context, limit int) []domain.Project {
	projects := s.ListProjects(ctx)

	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		return projects[i].Stars > projects[j].Stars
	})

	if limit > 0 && len(projects) > limit {
		projects = projects[:limit]
	}

	return projects
}

// listRemote fetches the repository listing, falling back to the cached last
// successful response when the API is unreachable. Failures are absorbed.
func (s *ProjectService) listRemote(ctx context.Context) []domain.Project {
	if s.lister == nil {
		return nil
	}

	projects, err := s.lister.ListRepositories(ctx)
	if err == nil {
		s.cacheListing(ctx, projects)
		return projects
	}

	s.logger.WarnContext(ctx, "repository listing unavailable, trying cache",
		slog.Any("error", err),
	)

	if cached := s.cachedListing(ctx); cached != nil {
		return cached
	}

	s.logger.WarnContext(ctx, "no cached repository listing, serving without remote projects")

	return nil
}

// listLocal fetches stored projects, absorbing failures.
func (s *ProjectService) listLocal(ctx context.Context) []domain.Project {
	if s.store == nil {
		return nil
	}

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stored projects",
			slog.Any("error", err),
		)
		return nil
	}

	return projects
}

// cacheListing stores the last successful repository listing.
func (s *ProjectService) cacheListing(ctx context.Context, projects []domain.Project) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(projects)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode repository listing for cache",
			slog.Any("error", err),
		)
		return
	}

	if err := s.cache.Set(ctx, repoCacheKey, payload, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache repository listing",
			slog.Any("error", err),
		)
	}
}

// cachedListing returns the cached listing, or nil when absent or unreadable.
func (s *ProjectService) cachedListing(ctx context.Context) []domain.Project {
	if s.cache == nil {
		return nil
	}

	payload, err := s.cache.Get(ctx, repoCacheKey)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WarnContext(ctx, "failed to read cached repository listing",
				slog.Any("error", err),
			)
		}
		return nil
	}

	var projects []domain.Project
	if err := json.Unmarshal(payload, &projects); err != nil {
		s.logger.ErrorContext(ctx, "failed to decode cached repository listing",
			slog.Any("error", err),
		)
		return nil
	}

	s.logger.InfoContext(ctx, "served repository listing from cache",
		slog.Int("projects", len(projects)),
	)

	return projects
}
