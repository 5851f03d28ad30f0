// Package main is the entry point for the portfolio site.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leonardomurakami/murakams-home/internal/adapters/cache"
	"github.com/leonardomurakami/murakams-home/internal/adapters/clients"
	"github.com/leonardomurakami/murakams-home/internal/adapters/clients/acl"
	httpadapter "github.com/leonardomurakami/murakams-home/internal/adapters/http"
	"github.com/leonardomurakami/murakams-home/internal/adapters/http/handlers"
	"github.com/leonardomurakami/murakams-home/internal/adapters/mail"
	"github.com/leonardomurakami/murakams-home/internal/adapters/pdf"
	"github.com/leonardomurakami/murakams-home/internal/adapters/storage"
	"github.com/leonardomurakami/murakams-home/internal/app"
	"github.com/leonardomurakami/murakams-home/internal/platform/config"
	"github.com/leonardomurakami/murakams-home/internal/platform/logging"
	"github.com/leonardomurakami/murakams-home/internal/platform/telemetry"
	"github.com/leonardomurakami/murakams-home/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load .env if present, then determine profile from environment
	_ = godotenv.Load()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting portfolio site",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Open the local data store
	store, err := storage.Open(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("data store close error", slog.Any("error", closeErr))
		}
	}()

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Select the cache backend
	repoCache, err := newCache(cfg, healthRegistry)
	if err != nil {
		return err
	}

	// 8. Create the GitHub client adapter when enabled (ACL pattern)
	var repoLister ports.RepositoryLister

	if cfg.GitHub.Enabled {
		httpClient, clientErr := clients.New(&clients.Config{
			BaseURL:     cfg.GitHub.BaseURL,
			ServiceName: "github",
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			AuthFunc:    githubAuth(cfg.GitHub.Token),
			Logger:      logger,
		})
		if clientErr != nil {
			return fmt.Errorf("creating HTTP client: %w", clientErr)
		}

		githubClient := acl.NewGitHubClient(acl.GitHubClientConfig{
			Client:   httpClient,
			Username: cfg.GitHub.Username,
			PerPage:  cfg.GitHub.PerPage,
			Logger:   logger,
		})
		repoLister = githubClient

		if err := healthRegistry.Register(githubClient); err != nil {
			return fmt.Errorf("registering github health check: %w", err)
		}
	}

	// 9. Create the mailer when SMTP is enabled
	var mailer ports.Mailer
	if cfg.SMTP.Enabled {
		mailer = mail.NewMailer(cfg.SMTP, logger)
	}

	// 10. Create application services
	projectService := app.NewProjectService(app.ProjectServiceConfig{
		Lister:   repoLister,
		Store:    store,
		Cache:    repoCache,
		CacheTTL: cfg.Cache.TTL,
		Logger:   logger,
	})
	contactService := app.NewContactService(app.ContactServiceConfig{
		Store:  store,
		Mailer: mailer,
		Logger: logger,
	})
	resumeService := app.NewResumeService(app.ResumeServiceConfig{
		LocalesDir: cfg.Web.LocalesDir,
		Renderer:   pdf.NewRenderer(),
		Logger:     logger,
	})

	// 11. Create handlers
	meta := handlers.SiteMeta{Name: cfg.App.Name, Version: cfg.App.Version}
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)

	// 12. Create HTTP server and router
	server := httpadapter.New(&cfg.Server, &cfg.Web, logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:         logger,
		AppConfig:      &cfg.App,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Timeout:        httpadapter.DefaultRequestTimeout,
		Pages:          handlers.NewPagesHandler(meta),
		Projects:       handlers.NewProjectsHandler(projectService, meta),
		Contact:        handlers.NewContactHandler(contactService, meta),
		Resume:         handlers.NewResumeHandler(resumeService, meta),
		Theme:          handlers.NewThemeHandler(),
		Health:         handlers.NewHealthHandler(healthRegistry, buildInfo),
	})

	// 13. Start server (non-blocking) and wait for shutdown
	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// newCache builds the cache backend named in the configuration.
// Redis registers itself as a health checker; the in-memory backend has no
// failure mode worth probing.
func newCache(cfg *config.Config, registry ports.HealthRegistry) (ports.Cache, error) {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemory(), nil
	}

	redisCache := cache.NewRedis(cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	if err := registry.Register(redisCache); err != nil {
		return nil, fmt.Errorf("registering redis health check: %w", err)
	}

	return redisCache, nil
}

// githubAuth returns an AuthFunc that attaches the API token, or nil when
// no token is configured (unauthenticated requests have a lower rate limit
// but work fine for public repositories).
func githubAuth(token string) func(*http.Request) {
	if token == "" {
		return nil
	}

	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *httpadapter.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
