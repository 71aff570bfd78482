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

// ============================================================================
// Task Operations
// ============================================================================

// TaskRepo handles task persistence. Every mutation validates its references
// and writes inside a single transaction.
type TaskRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// Require fails with a NotFoundError if no task has this id
func (r *TaskRepo) Require(ctx context.Context, id types.TaskID) error {
	return requireTask(ctx, r.db, id)
}

// Create validates the user, resolves the status and inserts the task.
// An empty statusName means types.DefaultStatus.
func (r *TaskRepo) Create(ctx context.Context, userID types.UserID, title string, desc models.Description, statusName string) (types.TaskID, error) {
	if statusName == "" {
		statusName = types.DefaultStatus
	}

	var id types.TaskID
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := requireUser(ctx, tx, userID); err != nil {
			return err
		}
		statusID, err := resolveStatus(ctx, tx, statusName)
		if err != nil {
			return err
		}
		id, err = insertTask(ctx, tx, userID, title, desc, statusID, r.now())
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateStatus validates the task, resolves the status and moves the task to it.
// updated_at is bumped past its previous value even when the clock has not advanced.
func (r *TaskRepo) UpdateStatus(ctx context.Context, taskID types.TaskID, statusName string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := requireTask(ctx, tx, taskID); err != nil {
			return err
		}
		statusID, err := resolveStatus(ctx, tx, statusName)
		if err != nil {
			return err
		}

		var prev timestamp
		if err := tx.GetContext(ctx, &prev, "SELECT updated_at FROM tasks WHERE id = ?", int64(taskID)); err != nil {
			return fmt.Errorf("failed to read task %d: %w", taskID, err)
		}
		next := r.now().UTC().Truncate(time.Microsecond)
		if !next.After(prev.Time) {
			next = prev.Add(time.Microsecond)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET status_id = ?, updated_at = ?
			 WHERE id = ?`,
			int64(statusID), formatTimestamp(next), int64(taskID),
		)
		if err != nil {
			return wrapWriteError(fmt.Sprintf("update task %d", taskID), err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if affected != 1 {
			return fmt.Errorf("update task %d: expected 1 row, updated %d", taskID, affected)
		}
		return nil
	})
}

// Get retrieves a single task
func (r *TaskRepo) Get(ctx context.Context, id types.TaskID) (*models.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, title, description, status_id, user_id, created_at, updated_at
		 FROM tasks WHERE id = ?`,
		int64(id),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "task", Key: fmt.Sprintf("id=%d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return row.toModel(), nil
}

// ByStatus returns tasks whose status name matches exactly, joined with their
// owner, newest update first and ties broken by descending id.
// limit <= 0 means unbounded.
func (r *TaskRepo) ByStatus(ctx context.Context, statusName string, limit int) ([]models.TaskWithUser, error) {
	// SQLite treats a negative LIMIT as no limit
	bound := int64(limit)
	if limit <= 0 {
		bound = -1
	}

	var rows []taskWithUserRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT t.id AS task_id, t.title, s.name AS status, u.id AS user_id,
		       u.fullname, u.email, t.created_at, t.updated_at
		FROM tasks t
		JOIN status s ON s.id = t.status_id
		JOIN users  u ON u.id = t.user_id
		WHERE s.name = ?
		ORDER BY t.updated_at DESC, t.id DESC
		LIMIT ?`,
		statusName, bound,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by status %q: %w", statusName, err)
	}

	tasks := make([]models.TaskWithUser, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// Count returns the number of tasks
func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

func insertTask(ctx context.Context, e sqlx.ExecerContext, userID types.UserID, title string, desc models.Description, statusID types.StatusID, now time.Time) (types.TaskID, error) {
	ts := formatTimestamp(now)
	result, err := e.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status_id, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, desc.NullString(), int64(statusID), int64(userID), ts, ts,
	)
	if err != nil {
		return 0, wrapWriteError(fmt.Sprintf("insert task %q", title), err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read task id: %w", err)
	}
	return types.TaskID(id), nil
}
