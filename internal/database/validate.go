package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// The helpers below take a sqlx.QueryerContext so they run unchanged against
// the pool or inside the transaction of a validate-then-write operation.

// resolveStatus looks a status up by exact name.
// On a miss the error lists every status name currently defined.
func resolveStatus(ctx context.Context, q sqlx.QueryerContext, name string) (types.StatusID, error) {
	var id types.StatusID
	err := sqlx.GetContext(ctx, q, &id, "SELECT id FROM status WHERE name = ?", name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to resolve status %q: %w", name, err)
	}

	available, err := statusNames(ctx, q)
	if err != nil {
		return 0, err
	}
	return 0, &models.NotFoundError{Entity: "status", Key: strconv.Quote(name), Available: available}
}

// statusNames returns all defined status names ordered by name
func statusNames(ctx context.Context, q sqlx.QueryerContext) ([]string, error) {
	names := []string{}
	if err := sqlx.SelectContext(ctx, q, &names, "SELECT name FROM status ORDER BY name"); err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return names, nil
}

func requireUser(ctx context.Context, q sqlx.QueryerContext, id types.UserID) error {
	ok, err := exists(ctx, q, "SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)", int64(id))
	if err != nil {
		return fmt.Errorf("failed to check user %d: %w", id, err)
	}
	if !ok {
		return &models.NotFoundError{Entity: "user", Key: fmt.Sprintf("id=%d", id)}
	}
	return nil
}

func requireTask(ctx context.Context, q sqlx.QueryerContext, id types.TaskID) error {
	ok, err := exists(ctx, q, "SELECT EXISTS (SELECT 1 FROM tasks WHERE id = ?)", int64(id))
	if err != nil {
		return fmt.Errorf("failed to check task %d: %w", id, err)
	}
	if !ok {
		return &models.NotFoundError{Entity: "task", Key: fmt.Sprintf("id=%d", id)}
	}
	return nil
}

func exists(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (bool, error) {
	var found bool
	if err := sqlx.GetContext(ctx, q, &found, query, args...); err != nil {
		return false, err
	}
	return found, nil
}
