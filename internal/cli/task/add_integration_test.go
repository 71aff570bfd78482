package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
	"github.com/thenoetrevino/tasktrack/internal/testutil/cli"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

func TestAddTask_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	uid := cli.CreateTestUser(t, db, "Grace Hopper", "grace@example.com")

	t.Run("status defaults to new", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), []string{
			"--uid", fmt.Sprint(uid),
			"--title", "Find the moth",
		})
		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("for Grace Hopper (user %d, status: new)", uid))

		var id types.TaskID
		require.NoError(t, db.GetContext(context.Background(), &id, "SELECT MAX(id) FROM tasks"))
		assert.Equal(t, types.StatusNew, statusOf(t, db, id))
		assert.Contains(t, output, fmt.Sprintf("Added task %d", id))
	})

	t.Run("explicit status", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), []string{
			"--uid", fmt.Sprint(uid),
			"--title", "Write compiler",
			"--status", "in progress",
			"--quiet",
		})
		require.NoError(t, err)

		id, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
		require.NoError(t, err, "quiet mode should print only the id")
		assert.Equal(t, types.StatusInProgress, statusOf(t, db, types.TaskID(id)))
	})

	t.Run("description states", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want sql.NullString
		}{
			{"omitted", nil, sql.NullString{}},
			{"empty", []string{"--desc="}, sql.NullString{String: "", Valid: true}},
			{"populated", []string{"--desc", "Relay #70, Panel F"}, sql.NullString{String: "Relay #70, Panel F", Valid: true}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				args := append([]string{"--uid", fmt.Sprint(uid), "--title", "Desc " + tt.name, "--quiet"}, tt.args...)
				output, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), args)
				require.NoError(t, err)

				var desc sql.NullString
				require.NoError(t, db.GetContext(context.Background(), &desc,
					"SELECT description FROM tasks WHERE id = ?", strings.TrimSpace(output)))
				assert.Equal(t, tt.want, desc)
			})
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), []string{
			"--uid", fmt.Sprint(uid),
			"--title", "Nanoseconds",
			"--json",
		})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Nanoseconds", data["title"])
		assert.Nil(t, data["description"])
		assert.Equal(t, float64(uid), data["user_id"])
	})
}

func TestAddTask_Negative(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	uid := cli.CreateTestUser(t, db, "Grace Hopper", "grace@example.com")

	t.Run("unknown user leaves the table unchanged", func(t *testing.T) {
		before := testutil.CountRows(t, db, "tasks")

		_, stderr, err := cli.ExecuteCLICommandWithStderr(t, context.Background(), app, AddTaskCmd(), []string{
			"--uid", "999",
			"--title", "Orphan",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrNotFound))
		assert.Equal(t, 3, exitCode(err))
		assert.Contains(t, stderr, "user id=999 not found")
		assert.Equal(t, before, testutil.CountRows(t, db, "tasks"))
	})

	t.Run("unknown status lists the vocabulary", func(t *testing.T) {
		before := testutil.CountRows(t, db, "tasks")

		_, stderr, err := cli.ExecuteCLICommandWithStderr(t, context.Background(), app, AddTaskCmd(), []string{
			"--uid", fmt.Sprint(uid),
			"--title", "Typo",
			"--status", "in-progress",
		})
		require.Error(t, err)

		var notFound *models.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{"completed", "in progress", "new"}, notFound.Available)
		assert.Contains(t, stderr, "Available: ['completed', 'in progress', 'new']")
		assert.Equal(t, before, testutil.CountRows(t, db, "tasks"))
	})

	t.Run("missing required flags", func(t *testing.T) {
		for _, args := range [][]string{
			{"--title", "No owner"},
			{"--uid", fmt.Sprint(uid)},
		} {
			_, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), args)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(err), "args %v", args)
		}
	})

	t.Run("blank title is a validation error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), []string{"--uid", fmt.Sprint(uid), "--title", "   "})
		require.Error(t, err)
		assert.Equal(t, 5, exitCode(err))
	})

	t.Run("non-positive user id is a validation error", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), []string{"--uid", "0", "--title", "Zero"})
		require.Error(t, err)
		assert.Equal(t, 5, exitCode(err))
	})

	t.Run("JSON error payload", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddTaskCmd(), []string{"--uid", "999", "--title", "x", "--json"})
		require.Error(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "NOT_FOUND", errData["code"])
	})
}
