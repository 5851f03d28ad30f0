package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Regex patterns for sensitive values that may end up in log attributes.
var (
	// GitHub token patterns (classic and fine-grained).
	githubTokenPattern = regexp.MustCompile(`^gh[pousr]_[A-Za-z0-9_]{20,}$`)

	// Bearer token pattern.
	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

	// Basic auth pattern.
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// DefaultRedactOptions returns the masq options for secret redaction.
// Covers the credentials this application handles: the GitHub API token
// and the SMTP password, plus generically named secret fields.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("smtp_password"),
		masq.WithFieldName("github_token"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(githubTokenPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that labels the custom trace level and redacts sensitive data.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	redact := masq.New(append(DefaultRedactOptions(), opts...)...)

	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
				a.Value = slog.StringValue("TRACE")
				return a
			}
		}

		return redact(groups, a)
	}
}
