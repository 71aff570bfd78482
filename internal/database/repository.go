package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*StatusRepo
	*UserRepo
	*TaskRepo

	db  *sqlx.DB
	now func() time.Time
}

// Option configures a Repository
type Option func(*Repository)

// WithClock replaces time.Now as the source of written timestamps
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sqlx.DB, opts ...Option) *Repository {
	r := &Repository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.StatusRepo = &StatusRepo{db: db}
	r.UserRepo = &UserRepo{db: db, now: r.now}
	r.TaskRepo = &TaskRepo{db: db, now: r.now}
	return r
}

// Close closes the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// InBatch runs fn with a Batch bound to one transaction.
// Any error from fn rolls back every row written through the batch.
func (r *Repository) InBatch(ctx context.Context, fn func(Batch) error) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&txBatch{tx: tx, now: r.now})
	})
}

// Wrapper methods keep call sites readable where embedded names collide

func (r *Repository) ResolveStatus(ctx context.Context, name string) (types.StatusID, error) {
	return r.StatusRepo.Resolve(ctx, name)
}

func (r *Repository) ListStatuses(ctx context.Context) ([]models.Status, error) {
	return r.StatusRepo.List(ctx)
}

func (r *Repository) EnsureStatuses(ctx context.Context, names []string) error {
	return r.StatusRepo.Ensure(ctx, names)
}

func (r *Repository) RequireUser(ctx context.Context, id types.UserID) error {
	return r.UserRepo.Require(ctx, id)
}

func (r *Repository) GetUser(ctx context.Context, id types.UserID) (models.User, error) {
	return r.UserRepo.Get(ctx, id)
}

func (r *Repository) InsertUser(ctx context.Context, fullname, email string) (types.UserID, error) {
	return r.UserRepo.Create(ctx, fullname, email)
}

func (r *Repository) QueryUsersWithoutTasks(ctx context.Context) ([]models.User, error) {
	return r.UserRepo.WithoutTasks(ctx)
}

func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	return r.UserRepo.Count(ctx)
}

func (r *Repository) RequireTask(ctx context.Context, id types.TaskID) error {
	return r.TaskRepo.Require(ctx, id)
}

func (r *Repository) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	return r.TaskRepo.Get(ctx, id)
}

func (r *Repository) InsertTask(ctx context.Context, userID types.UserID, title string, desc models.Description, statusName string) (types.TaskID, error) {
	return r.TaskRepo.Create(ctx, userID, title, desc, statusName)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, taskID types.TaskID, statusName string) error {
	return r.TaskRepo.UpdateStatus(ctx, taskID, statusName)
}

func (r *Repository) QueryTasksByStatus(ctx context.Context, statusName string, limit int) ([]models.TaskWithUser, error) {
	return r.TaskRepo.ByStatus(ctx, statusName, limit)
}

func (r *Repository) CountTasks(ctx context.Context) (int, error) {
	return r.TaskRepo.Count(ctx)
}
