package task

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	appcli "github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// exitCode is the process exit code main would use for err
func exitCode(err error) int {
	return appcli.ExitCodeFor(err)
}

// statusOf returns the status name of a task straight from the store
func statusOf(t *testing.T, db *sqlx.DB, id types.TaskID) string {
	t.Helper()
	var name string
	err := db.GetContext(context.Background(), &name,
		"SELECT s.name FROM tasks t JOIN status s ON s.id = t.status_id WHERE t.id = ?", int64(id))
	require.NoError(t, err)
	return name
}
