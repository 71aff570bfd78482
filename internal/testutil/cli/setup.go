package cli

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sqlx.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	appInstance := app.New(database.NewRepository(db))

	return db, appInstance
}

// CreateTestUser wraps testutil.CreateTestUser for CLI tests
func CreateTestUser(t *testing.T, db *sqlx.DB, fullname, email string) types.UserID {
	t.Helper()
	return testutil.CreateTestUser(t, db, fullname, email)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
// Creates a task in the named status, last updated at updatedAt
func CreateTestTask(t *testing.T, db *sqlx.DB, userID types.UserID, title, status string, updatedAt time.Time) types.TaskID {
	t.Helper()
	return testutil.CreateTestTask(t, db, userID, title, status, updatedAt)
}
