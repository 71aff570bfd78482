// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// DataStore defines the unified interface for all data operations needed by the services.
// This interface enables mocking with testify for unit testing.
type DataStore interface {
	// Statuses
	ResolveStatus(ctx context.Context, name string) (types.StatusID, error)
	ListStatuses(ctx context.Context) ([]models.Status, error)
	EnsureStatuses(ctx context.Context, names []string) error

	// Users
	RequireUser(ctx context.Context, id types.UserID) error
	GetUser(ctx context.Context, id types.UserID) (models.User, error)
	InsertUser(ctx context.Context, fullname, email string) (types.UserID, error)
	QueryUsersWithoutTasks(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Tasks
	RequireTask(ctx context.Context, id types.TaskID) error
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)
	InsertTask(ctx context.Context, userID types.UserID, title string, desc models.Description, statusName string) (types.TaskID, error)
	UpdateTaskStatus(ctx context.Context, taskID types.TaskID, statusName string) error
	QueryTasksByStatus(ctx context.Context, statusName string, limit int) ([]models.TaskWithUser, error)
	CountTasks(ctx context.Context) (int, error)

	// Bulk writes
	InBatch(ctx context.Context, fn func(Batch) error) error

	Close() error
}

var _ DataStore = (*Repository)(nil)
