package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListByStatus(ctx context.Context, statusName string, limit int) ([]models.TaskWithUser, error)
	ListStatuses(ctx context.Context) ([]models.Status, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	UserID      types.UserID
	Title       string
	Description models.Description
	Status      string // Optional: "" means types.DefaultStatus
}

// UpdateStatusRequest moves a task to another status
type UpdateStatusRequest struct {
	TaskID types.TaskID
	Status string
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new task service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTask handles task creation with validation.
// A missing status silently defaults to "new"; a misspelled one fails the lookup.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validateCreateTask(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = types.DefaultStatus
	}

	id, err := s.repo.InsertTask(ctx, req.UserID, req.Title, req.Description, status)
	if err != nil {
		s.logger.Warn("task insert rejected", "user_id", req.UserID, "status", status, "error", err)
		return nil, err
	}

	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task %d: %w", id, err)
	}

	s.logger.Info("task created", "task_id", id, "user_id", req.UserID, "status", status,
		"description", req.Description.State.String())
	return task, nil
}

// UpdateStatus moves a task to any status; transitions are not constrained
func (s *service) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if strings.TrimSpace(req.Status) == "" {
		return nil, ErrEmptyStatus
	}

	if err := s.repo.UpdateTaskStatus(ctx, req.TaskID, req.Status); err != nil {
		s.logger.Warn("status update rejected", "task_id", req.TaskID, "status", req.Status, "error", err)
		return nil, err
	}

	task, err := s.repo.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task %d: %w", req.TaskID, err)
	}

	s.logger.Info("task status updated", "task_id", req.TaskID, "status", req.Status)
	return task, nil
}

// ListByStatus returns tasks in the named status; limit <= 0 means all
func (s *service) ListByStatus(ctx context.Context, statusName string, limit int) ([]models.TaskWithUser, error) {
	return s.repo.QueryTasksByStatus(ctx, statusName, limit)
}

// ListStatuses returns the status vocabulary in insertion order
func (s *service) ListStatuses(ctx context.Context) ([]models.Status, error) {
	return s.repo.ListStatuses(ctx)
}

func (s *service) validateCreateTask(req CreateTaskRequest) error {
	if req.UserID <= 0 {
		return ErrInvalidUserID
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if !req.Description.Valid() {
		return ErrInvalidDescription
	}
	return nil
}
