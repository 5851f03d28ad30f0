package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/leonardomurakami/murakams-home/internal/adapters/http/handlers"
	"github.com/leonardomurakami/murakams-home/internal/adapters/http/middleware"
	"github.com/leonardomurakami/murakams-home/internal/platform/config"
	"github.com/leonardomurakami/murakams-home/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for page requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// AllowedOrigins configures CORS for cross-origin asset requests.
	// Empty means no CORS middleware is applied.
	AllowedOrigins []string

	// Timeout is the default request deadline.
	Timeout time.Duration

	// Handlers for the site routes.
	Pages    *handlers.PagesHandler
	Projects *handlers.ProjectsHandler
	Contact  *handlers.ContactHandler
	Resume   *handlers.ResumeHandler
	Theme    *handlers.ThemeHandler
	Health   *handlers.HealthHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - handle distributed tracing correlation
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips operational endpoints)
//  6. Timeout - request deadline
//
// Route groups:
//   - /-/ (internal): probes, build info, and metrics
//   - / (public): server-rendered pages and HTMX fragments
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
	)

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		engine.Use(cors.New(corsCfg))
	}

	// Probes get no timeout; they must answer even when dependencies hang
	if cfg.Health != nil {
		cfg.Health.RegisterHealthRoutesOnEngine(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	site := engine.Group("")
	site.Use(middleware.Timeout(timeout))
	setupSiteRoutes(site, cfg)

	if cfg.Pages != nil {
		engine.NoRoute(cfg.Pages.NotFound)
	}
}

// setupSiteRoutes registers the public page and fragment routes.
func setupSiteRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Pages != nil {
		rg.GET("/", cfg.Pages.Home)
		rg.GET("/about", cfg.Pages.About)
	}

	if cfg.Projects != nil {
		rg.GET("/projects", cfg.Projects.List)
		rg.GET("/projects/search", cfg.Projects.Search)
		rg.GET("/projects/featured", cfg.Projects.Featured)
	}

	if cfg.Contact != nil {
		rg.GET("/contact", cfg.Contact.Show)
		rg.POST("/contact", cfg.Contact.Submit)
	}

	if cfg.Resume != nil {
		rg.GET("/resume", cfg.Resume.Show)
		rg.GET("/resume/download", cfg.Resume.Download)
	}

	if cfg.Theme != nil {
		rg.POST("/theme/toggle", cfg.Theme.Toggle)
	}
}
