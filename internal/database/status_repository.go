package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// StatusRepo handles reads of the status vocabulary
type StatusRepo struct {
	db *sqlx.DB
}

// Resolve returns the id of the status with exactly this name
func (r *StatusRepo) Resolve(ctx context.Context, name string) (types.StatusID, error) {
	return resolveStatus(ctx, r.db, name)
}

// List returns every status in insertion order
func (r *StatusRepo) List(ctx context.Context) ([]models.Status, error) {
	return listStatuses(ctx, r.db)
}

// Ensure inserts any missing names; present names are left untouched
func (r *StatusRepo) Ensure(ctx context.Context, names []string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return ensureStatuses(ctx, tx, names)
	})
}

func listStatuses(ctx context.Context, q sqlx.QueryerContext) ([]models.Status, error) {
	var rows []statusRow
	if err := sqlx.SelectContext(ctx, q, &rows, "SELECT id, name FROM status ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	statuses := make([]models.Status, len(rows))
	for i, row := range rows {
		statuses[i] = row.toModel()
	}
	return statuses, nil
}

func ensureStatuses(ctx context.Context, e sqlx.ExecerContext, names []string) error {
	for _, name := range names {
		if _, err := e.ExecContext(ctx, "INSERT OR IGNORE INTO status (name) VALUES (?)", name); err != nil {
			return wrapWriteError(fmt.Sprintf("insert status %q", name), err)
		}
	}
	return nil
}
