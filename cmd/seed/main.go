// Package main seeds the local data store with sample projects for
// development. Safe to run repeatedly; entries are upserted by name.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/leonardomurakami/murakams-home/internal/adapters/storage"
	"github.com/leonardomurakami/murakams-home/internal/domain"
	"github.com/leonardomurakami/murakams-home/internal/platform/config"
	"github.com/leonardomurakami/murakams-home/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	_ = godotenv.Load()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:   "info",
		Format:  "pretty",
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	})

	store, err := storage.Open(cfg.Database.Path, logger)
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}
	defer store.Close()

	for _, project := range sampleProjects() {
		if err := store.SaveProject(ctx, &project); err != nil {
			return fmt.Errorf("seeding project %q: %w", project.Name, err)
		}

		logger.Info("seeded project", slog.String("name", project.Name))
	}

	logger.Info("seeding complete", slog.Int("projects", len(sampleProjects())))

	return nil
}

// sampleProjects returns curated entries for local development so the
// projects page has content before any repository listing is configured.
func sampleProjects() []domain.Project {
	return []domain.Project{
		{
			Name:        "E-Commerce Platform",
			Description: "A full-stack e-commerce solution with user authentication, product catalog, shopping cart, payment processing, and an admin dashboard.",
			Tags:        []string{"Go", "React", "PostgreSQL", "Docker", "Stripe"},
			GitHubURL:   "https://github.com/leonardomurakami/ecommerce-platform",
			DemoURL:     "https://ecommerce-demo.example.com",
			Language:    "Go",
			Featured:    true,
		},
		{
			Name:        "Task Management API",
			Description: "RESTful API for task management with user authentication, team collaboration, and real-time updates over WebSockets.",
			Tags:        []string{"Go", "WebSockets", "Redis"},
			GitHubURL:   "https://github.com/leonardomurakami/task-management-api",
			Language:    "Go",
			Featured:    true,
		},
		{
			Name:        "Data Analytics Dashboard",
			Description: "Interactive dashboard for data visualization and analytics using modern web technologies and chart libraries.",
			Tags:        []string{"JavaScript", "React", "D3.js", "MongoDB"},
			GitHubURL:   "https://github.com/leonardomurakami/analytics-dashboard",
			DemoURL:     "https://analytics-demo.example.com",
			Language:    "JavaScript",
		},
		{
			Name:        "Personal Finance Tracker",
			Description: "Mobile-friendly web application for tracking personal expenses, income, and financial goals with visualizations.",
			Tags:        []string{"Python", "Flask", "Chart.js", "SQLite"},
			GitHubURL:   "https://github.com/leonardomurakami/finance-tracker",
			Language:    "Python",
		},
		{
			Name:        "Weather Forecast App",
			Description: "Real-time weather application with location-based forecasts, weather maps, and historical data analysis.",
			Tags:        []string{"JavaScript", "React", "Tailwind CSS"},
			GitHubURL:   "https://github.com/leonardomurakami/weather-app",
			DemoURL:     "https://weather-demo.example.com",
			Language:    "JavaScript",
		},
	}
}
