// Package database handles the initialization and connection to the SQLite store
// and implements the data access layer on top of it.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/models"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// SeedHint tells the operator how to create a missing store
const SeedHint = "Prepare it using tasktrack-seed --db <path>"

// OpenExisting opens a store that must already exist on disk.
// A missing file is a PreconditionError: the CLI never creates stores implicitly.
func OpenExisting(ctx context.Context, path string) (*sqlx.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &models.PreconditionError{Path: path, Hint: SeedHint}
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	return Open(ctx, path)
}

// Open opens (creating if needed) the SQLite file at path and configures the connection
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	raw, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer connection; also keeps ":memory:" databases alive across calls
	raw.SetMaxOpenConns(1)
	raw.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := raw.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			if closeErr := raw.Close(); closeErr != nil {
				slog.Error("error closing db", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := raw.PingContext(ctx); err != nil {
		if closeErr := raw.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return sqlx.NewDb(raw, DriverName), nil
}
