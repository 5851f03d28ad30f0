// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8000

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20

	// DefaultGitHubPerPage is the default number of repositories fetched
	// from the repository listing.
	DefaultGitHubPerPage = 10

	// DefaultSMTPPort is the default SMTP submission port.
	DefaultSMTPPort = 587

	// DefaultCacheTTL is the default lifetime of the cached repository
	// listing response.
	DefaultCacheTTL = 10 * time.Minute

	// DefaultClientRetryMaxAttempts is the default number of outbound
	// request attempts (1 initial + 1 retry).
	DefaultClientRetryMaxAttempts = 2

	// DefaultClientCircuitMaxFailures is the default consecutive failures
	// before the outbound circuit opens.
	DefaultClientCircuitMaxFailures = 5

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files kept.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default retention for old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure. Loaded once at startup and
// read-only afterwards.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Web       WebConfig       `koanf:"web"       validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	GitHub    GitHubConfig    `koanf:"github"`
	SMTP      SMTPConfig      `koanf:"smtp"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
	Cache     CacheConfig     `koanf:"cache"     validate:"required"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
	AllowedOrigins  []string      `koanf:"allowed_origins"`
}

// WebConfig contains template, static asset, and locale locations.
type WebConfig struct {
	TemplatesGlob string `koanf:"templates_glob" validate:"required"`
	StaticDir     string `koanf:"static_dir"     validate:"required"`
	LocalesDir    string `koanf:"locales_dir"    validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// GitHubConfig contains the repository-listing API settings.
// When disabled or missing a username, the projects page shows only
// locally stored projects.
type GitHubConfig struct {
	Enabled  bool   `koanf:"enabled"`
	BaseURL  string `koanf:"base_url" validate:"required_if=Enabled true,omitempty,url"`
	Username string `koanf:"username" validate:"required_if=Enabled true"`
	Token    string `koanf:"token"`
	PerPage  int    `koanf:"per_page" validate:"min=1,max=100"`
}

// SMTPConfig contains outbound email settings for the contact form.
// Host mailhog/localhost with port 1025 is treated as a local capture
// server (no STARTTLS, no auth).
type SMTPConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Host         string `koanf:"host"          validate:"required_if=Enabled true"`
	Port         int    `koanf:"port"          validate:"min=0,max=65535"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	From         string `koanf:"from"          validate:"required_if=Enabled true,omitempty,email"`
	ContactEmail string `koanf:"contact_email" validate:"required_if=Enabled true,omitempty,email"`
}

// DatabaseConfig contains local data store settings.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// CacheConfig selects the last-response cache backend.
type CacheConfig struct {
	Backend   string        `koanf:"backend"    validate:"required,oneof=memory redis"`
	TTL       time.Duration `koanf:"ttl"        validate:"min=0"`
	RedisAddr string        `koanf:"redis_addr" validate:"required_if=Backend redis"`
	RedisDB   int           `koanf:"redis_db"   validate:"min=0"`
}

// ClientConfig contains outbound HTTP client settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
}

// RetryConfig contains retry settings for outbound requests.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for outbound requests.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "murakams-home",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,
		"server.allowed_origins":  []string{},

		"web.templates_glob": "web/templates/**/*.html",
		"web.static_dir":     "web/static",
		"web.locales_dir":    "web/locales",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "murakams-home",
		"telemetry.sampling_rate": 1.0,

		"github.enabled":  false,
		"github.base_url": "https://api.github.com",
		"github.username": "",
		"github.token":    "",
		"github.per_page": DefaultGitHubPerPage,

		"smtp.enabled":       false,
		"smtp.host":          "smtp.gmail.com",
		"smtp.port":          DefaultSMTPPort,
		"smtp.username":      "",
		"smtp.password":      "",
		"smtp.from":          "",
		"smtp.contact_email": "",

		"database.path": "./data/portfolio.db",

		"cache.backend":    "memory",
		"cache.ttl":        DefaultCacheTTL.String(),
		"cache.redis_addr": "",
		"cache.redis_db":   0,

		"client.timeout":                         "10s",
		"client.retry.max_attempts":              DefaultClientRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                2.0,
		"client.retry.jitter_factor":             0.25,
		"client.circuit_breaker.max_failures":    DefaultClientCircuitMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": 2,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "APP_")),
			"_",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
