package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// TimestampLayout is how the data access layer writes timestamps.
// Fixed width and UTC, so ordering the text column orders chronologically.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// formatTimestamp renders t in the stored layout
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// isConstraintViolation reports whether err is a SQLite constraint failure
// (UNIQUE, FOREIGN KEY, NOT NULL, CHECK, PRIMARY KEY).
func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// wrapWriteError turns store constraint failures into IntegrityError and
// wraps everything else with the operation name.
func wrapWriteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return &models.IntegrityError{Op: op, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
