package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// ErrInvalidUserID is returned for non-positive ids
var ErrInvalidUserID = errors.New("invalid user ID")

// Service defines user-related read operations
type Service interface {
	GetUser(ctx context.Context, id types.UserID) (models.User, error)
	WithoutTasks(ctx context.Context) ([]models.User, error)
}

type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new user service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, logger: logger}
}

func (s *service) GetUser(ctx context.Context, id types.UserID) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidUserID
	}
	return s.repo.GetUser(ctx, id)
}

// WithoutTasks returns users owning no task, ordered by full name
func (s *service) WithoutTasks(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.QueryUsersWithoutTasks(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("users without tasks", "count", len(users))
	return users, nil
}
