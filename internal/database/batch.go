package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// Batch writes many rows inside one transaction. Foreign keys are enforced by
// the store, so a bad reference surfaces as an IntegrityError and aborts the batch.
type Batch interface {
	EnsureStatuses(ctx context.Context, names []string) error
	Statuses(ctx context.Context) ([]models.Status, error)
	InsertUser(ctx context.Context, fullname, email string) (types.UserID, error)
	InsertTask(ctx context.Context, userID types.UserID, title string, desc models.Description, statusID types.StatusID) (types.TaskID, error)
}

type txBatch struct {
	tx  *sqlx.Tx
	now func() time.Time
}

func (b *txBatch) EnsureStatuses(ctx context.Context, names []string) error {
	return ensureStatuses(ctx, b.tx, names)
}

func (b *txBatch) Statuses(ctx context.Context) ([]models.Status, error) {
	return listStatuses(ctx, b.tx)
}

func (b *txBatch) InsertUser(ctx context.Context, fullname, email string) (types.UserID, error) {
	return insertUser(ctx, b.tx, fullname, email, b.now())
}

func (b *txBatch) InsertTask(ctx context.Context, userID types.UserID, title string, desc models.Description, statusID types.StatusID) (types.TaskID, error) {
	return insertTask(ctx, b.tx, userID, title, desc, statusID, b.now())
}
