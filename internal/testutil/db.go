package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema and status vocabulary
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Bootstrap(ctx, db, database.DefaultSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	for _, name := range types.DefaultStatuses() {
		if _, err := db.ExecContext(ctx, "INSERT OR IGNORE INTO status (name) VALUES (?)", name); err != nil {
			t.Fatalf("Failed to seed status %q: %v", name, err)
		}
	}

	return db
}

// CreateTestUser creates a test user and returns its ID
func CreateTestUser(t *testing.T, db *sqlx.DB, fullname, email string) types.UserID {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO users (fullname, email) VALUES (?, ?)", fullname, email)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	userID, _ := result.LastInsertId()
	return types.UserID(userID)
}

// CreateTestTask creates a test task in the named status and returns its ID.
// updatedAt is written verbatim so tests control ordering.
func CreateTestTask(t *testing.T, db *sqlx.DB, userID types.UserID, title, status string, updatedAt time.Time) types.TaskID {
	t.Helper()
	ts := updatedAt.UTC().Format(database.TimestampLayout)
	result, err := db.ExecContext(context.Background(), `
		INSERT INTO tasks (title, status_id, user_id, created_at, updated_at)
		VALUES (?, (SELECT id FROM status WHERE name = ?), ?, ?, ?)`,
		title, status, int64(userID), ts, ts)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	taskID, _ := result.LastInsertId()
	return types.TaskID(taskID)
}

// CountRows returns the row count of table
func CountRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var count int
	if err := db.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}
