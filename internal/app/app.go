package app

import (
	"log/slog"

	"github.com/thenoetrevino/tasktrack/internal/database"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
	userservice "github.com/thenoetrevino/tasktrack/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskService taskservice.Service
	UserService userservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:        repo,
		TaskService: taskservice.NewService(repo, cfg.logger),
		UserService: userservice.NewService(repo, cfg.logger),
	}
}

// Repo returns the underlying repository for direct database access.
// The seeder writes through it in bulk, bypassing the services.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database connection
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}
