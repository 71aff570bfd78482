package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// DefaultSchema is the DDL used when provisioning without an explicit --ddl file
//
//go:embed schema.sql
var DefaultSchema string

// LoadDDL reads a schema script from path, or returns DefaultSchema when path is empty
func LoadDDL(path string) (string, error) {
	if path == "" {
		return DefaultSchema, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read ddl %s: %w", path, err)
	}
	return string(data), nil
}

// Bootstrap executes a schema script against db.
// The script must be idempotent (CREATE ... IF NOT EXISTS); it is not a migration system.
func Bootstrap(ctx context.Context, db *sqlx.DB, ddl string) error {
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
