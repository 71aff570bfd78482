package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// UserRepo handles user reads and inserts
type UserRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// Require fails with a NotFoundError if no user has this id
func (r *UserRepo) Require(ctx context.Context, id types.UserID) error {
	return requireUser(ctx, r.db, id)
}

// Get retrieves a single user
func (r *UserRepo) Get(ctx context.Context, id types.UserID) (models.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.db, &row,
		"SELECT id, fullname, email, created_at FROM users WHERE id = ?", int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, &models.NotFoundError{Entity: "user", Key: fmt.Sprintf("id=%d", id)}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return row.toModel(), nil
}

// Create inserts a user. A duplicate email is an IntegrityError.
func (r *UserRepo) Create(ctx context.Context, fullname, email string) (types.UserID, error) {
	var id types.UserID
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		id, err = insertUser(ctx, tx, fullname, email, r.now())
		return err
	})
	return id, err
}

// WithoutTasks returns users no task references, ordered by full name
// (binary collation) with the id as tie-breaker.
func (r *UserRepo) WithoutTasks(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	err := sqlx.SelectContext(ctx, r.db, &rows, `
		SELECT u.id, u.fullname, u.email, u.created_at
		FROM users u
		WHERE NOT EXISTS (SELECT 1 FROM tasks t WHERE t.user_id = u.id)
		ORDER BY u.fullname COLLATE BINARY ASC, u.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users without tasks: %w", err)
	}
	users := make([]models.User, len(rows))
	for i, row := range rows {
		users[i] = row.toModel()
	}
	return users, nil
}

// Count returns the number of users
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func insertUser(ctx context.Context, e sqlx.ExecerContext, fullname, email string, now time.Time) (types.UserID, error) {
	result, err := e.ExecContext(ctx,
		"INSERT INTO users (fullname, email, created_at) VALUES (?, ?, ?)",
		fullname, email, formatTimestamp(now),
	)
	if err != nil {
		return 0, wrapWriteError(fmt.Sprintf("insert user %q", email), err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read user id: %w", err)
	}
	return types.UserID(id), nil
}
