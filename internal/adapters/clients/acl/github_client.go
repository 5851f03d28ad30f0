// Package acl implements the Anti-Corruption Layer pattern for external services.
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/leonardomurakami/murakams-home/internal/adapters/clients"
	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/platform/logging"
)

// GitHubClientConfig contains configuration for the GitHub client.
type GitHubClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the GitHub API endpoint.
	Client *clients.Client

	// Username is the GitHub account whose public repositories are listed.
	Username string

	// PerPage limits how many repositories are requested per listing call.
	PerPage int

	// Logger is the structured logger.
	Logger *slog.Logger
}

// GitHubClient implements ports.RepositoryLister against the GitHub REST API.
// It translates GitHub repository DTOs into domain projects, keeping GitHub's
// wire format out of the rest of the application.
type GitHubClient struct {
	client   *clients.Client
	username string
	perPage  int
	logger   *slog.Logger
}

// NewGitHubClient creates a new GitHub client adapter.
// Panics if Client is nil or Username is empty. Defaults logger to slog.Default() if nil.
func NewGitHubClient(cfg GitHubClientConfig) *GitHubClient {
	if cfg.Client == nil {
		panic("GitHubClient: Client is required")
	}

	if cfg.Username == "" {
		panic("GitHubClient: Username is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = 10
	}

	return &GitHubClient{
		client:   cfg.Client,
		username: cfg.Username,
		perPage:  perPage,
		logger:   logger,
	}
}

// githubRepository is the external DTO from the GitHub repositories API.
// This is an internal type - never exposed outside the ACL.
type githubRepository struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Homepage        string    `json:"homepage"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Fork            bool      `json:"fork"`
	Topics          []string  `json:"topics"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListRepositories fetches the user's public repositories, most recently
// updated first. Forked repositories are filtered out.
// Implements ports.RepositoryLister.
func (c *GitHubClient) ListRepositories(ctx context.Context) ([]domain.Project, error) {
	path := fmt.Sprintf("/users/%s/repos?sort=updated&direction=desc&type=public&per_page=%d",
		url.PathEscape(c.username), c.perPage)

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))
	c.logger.DebugContext(ctx, "listing repositories", slog.String("username", c.username))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError("github", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	return c.parseRepositoryList(ctx, resp.Body)
}

// RepositoryLanguages fetches the language byte counts for a repository.
// Implements ports.RepositoryLister.
func (c *GitHubClient) RepositoryLanguages(ctx context.Context, repo string) (map[string]int64, error) {
	path := fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(c.username), url.PathEscape(repo))

	c.logger.DebugContext(ctx, "fetching repository languages", slog.String("repo", repo))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError("github", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError("repository", repo)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var languages map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&languages); err != nil {
		return nil, fmt.Errorf("decoding languages response: %w", err)
	}

	return languages, nil
}

// parseRepositoryList reads and translates the external DTOs to domain projects.
// This is the core ACL translation function.
func (c *GitHubClient) parseRepositoryList(ctx context.Context, body io.Reader) ([]domain.Project, error) {
	var external []githubRepository

	if err := json.NewDecoder(body).Decode(&external); err != nil {
		return nil, fmt.Errorf("decoding repository list: %w", err)
	}

	projects := make([]domain.Project, 0, len(external))
	skippedForks := 0

	for i := range external {
		if external[i].Fork {
			skippedForks++
			continue
		}
		projects = append(projects, c.translateToDomain(&external[i]))
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated external DTOs to domain",
		slog.Int("projects", len(projects)),
		slog.Int("skipped_forks", skippedForks))

	return projects, nil
}

// translateToDomain converts a GitHub repository DTO to a domain Project.
// This isolates the domain from GitHub API changes.
func (c *GitHubClient) translateToDomain(ext *githubRepository) domain.Project {
	return domain.Project{
		Name:        ext.Name,
		Description: ext.Description,
		Tags:        ext.Topics,
		GitHubURL:   ext.HTMLURL,
		DemoURL:     ext.Homepage,
		Language:    ext.Language,
		Stars:       ext.StargazersCount,
		Forks:       ext.ForksCount,
		Source:      domain.SourceGitHub,
		UpdatedAt:   ext.UpdatedAt,
	}
}

// handleErrorResponse converts HTTP error responses to domain errors.
func (c *GitHubClient) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	c.logger.Warn("github API error",
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NewNotFoundError("user", c.username)
	case http.StatusForbidden, http.StatusTooManyRequests:
		return domain.NewUnavailableError("github", rateLimitReason(resp))
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return domain.NewUnavailableError("github", fmt.Sprintf("HTTP %d", resp.StatusCode))
	default:
		return domain.NewUnavailableError("github", fmt.Sprintf("unexpected HTTP %d", resp.StatusCode))
	}
}

// rateLimitReason builds an error reason including the reset time when
// GitHub's rate limit headers indicate throttling.
func rateLimitReason(resp *http.Response) string {
	if resp.Header.Get("X-RateLimit-Remaining") != "0" {
		return fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	reason := "rate limit exceeded"
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if epoch, err := strconv.ParseInt(reset, 10, 64); err == nil {
			reason = fmt.Sprintf("rate limit exceeded, resets at %s",
				time.Unix(epoch, 0).UTC().Format(time.RFC3339))
		}
	}

	return reason
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *GitHubClient) Name() string {
	return "github"
}

// Check performs a health check by fetching the configured user.
// Implements ports.HealthChecker.
func (c *GitHubClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/users/"+url.PathEscape(c.username))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github API returned status %d", resp.StatusCode)
	}

	return nil
}
