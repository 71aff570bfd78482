package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

func TestInsertTask_DefaultsToNewStatus(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "Ada Lovelace", "ada@example.com")

	taskID, err := repo.InsertTask(ctx, userID, "Write notes", models.NoDescription(), "")
	require.NoError(t, err)

	task, err := repo.GetTask(ctx, taskID)
	require.NoError(t, err)

	newID, err := repo.ResolveStatus(ctx, types.StatusNew)
	require.NoError(t, err)
	assert.Equal(t, newID, task.StatusID)
	assert.Equal(t, userID, task.UserID)
	assert.Equal(t, "Write notes", task.Title)
}

func TestInsertTask_DescriptionStates(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "Ada Lovelace", "ada@example.com")

	tests := []struct {
		name string
		desc models.Description
	}{
		{"absent", models.NoDescription()},
		{"empty", models.EmptyDescription()},
		{"populated", models.DescriptionOf("analytical engine")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskID, err := repo.InsertTask(ctx, userID, "Task "+tt.name, tt.desc, types.StatusCompleted)
			require.NoError(t, err)

			task, err := repo.GetTask(ctx, taskID)
			require.NoError(t, err)
			assert.Equal(t, tt.desc, task.Description)
		})
	}

	// NULL and '' must stay distinguishable at the column level too
	var nulls, empties int
	require.NoError(t, repo.db.GetContext(ctx, &nulls, "SELECT COUNT(*) FROM tasks WHERE description IS NULL"))
	require.NoError(t, repo.db.GetContext(ctx, &empties, "SELECT COUNT(*) FROM tasks WHERE description = ''"))
	assert.Equal(t, 1, nulls)
	assert.Equal(t, 1, empties)
}

func TestInsertTask_UnknownUser(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	before, err := repo.CountTasks(ctx)
	require.NoError(t, err)

	_, err = repo.InsertTask(ctx, 999, "Orphan", models.NoDescription(), "")
	require.Error(t, err)

	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Entity)
	assert.ErrorIs(t, err, models.ErrNotFound)

	after, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInsertTask_UnknownStatus(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "Ada Lovelace", "ada@example.com")

	_, err := repo.InsertTask(ctx, userID, "Typo", models.NoDescription(), "in-progress")

	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "status", nf.Entity)
	assert.Equal(t, []string{"completed", "in progress", "new"}, nf.Available)

	count, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestResolveStatus_ListsCurrentNames(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureStatuses(ctx, []string{"blocked"}))

	_, err := repo.ResolveStatus(ctx, "archived")
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"blocked", "completed", "in progress", "new"}, nf.Available)
	assert.Contains(t, err.Error(), "'blocked'")
}

func TestEnsureStatuses_Idempotent(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureStatuses(ctx, types.DefaultStatuses()))
	require.NoError(t, repo.EnsureStatuses(ctx, types.DefaultStatuses()))

	statuses, err := repo.ListStatuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultStatuses(), models.StatusNames(statuses))
}

func TestUpdateTaskStatus(t *testing.T) {
	repo, clock := setupTestRepo(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "Ada Lovelace", "ada@example.com")

	taskID, err := repo.InsertTask(ctx, userID, "Ship it", models.NoDescription(), "")
	require.NoError(t, err)
	original, err := repo.GetTask(ctx, taskID)
	require.NoError(t, err)

	t.Run("updated_at strictly increases when the clock stands still", func(t *testing.T) {
		require.NoError(t, repo.UpdateTaskStatus(ctx, taskID, types.StatusInProgress))

		task, err := repo.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.True(t, task.UpdatedAt.After(original.UpdatedAt))
		assert.True(t, task.CreatedAt.Equal(original.CreatedAt))
	})

	t.Run("updated_at follows the clock", func(t *testing.T) {
		clock.Advance(time.Hour)
		require.NoError(t, repo.UpdateTaskStatus(ctx, taskID, types.StatusCompleted))

		task, err := repo.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.True(t, task.UpdatedAt.Equal(clock.Now()))
		assert.True(t, task.CreatedAt.Equal(original.CreatedAt))
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		require.NoError(t, repo.UpdateTaskStatus(ctx, taskID, types.StatusNew))
		task, err := repo.GetTask(ctx, taskID)
		require.NoError(t, err)
		newID, err := repo.ResolveStatus(ctx, types.StatusNew)
		require.NoError(t, err)
		assert.Equal(t, newID, task.StatusID)
	})
}

func TestUpdateTaskStatus_NotFound(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "Ada Lovelace", "ada@example.com")
	taskID, err := repo.InsertTask(ctx, userID, "Ship it", models.NoDescription(), "")
	require.NoError(t, err)

	err = repo.UpdateTaskStatus(ctx, 404, types.StatusCompleted)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	before, err := repo.GetTask(ctx, taskID)
	require.NoError(t, err)

	err = repo.UpdateTaskStatus(ctx, taskID, "done")
	var nf *models.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "status", nf.Entity)

	after, err := repo.GetTask(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestQueryTasksByStatus(t *testing.T) {
	repo, clock := setupTestRepo(t)
	ctx := context.Background()
	userID := createTestUser(t, repo, "Ada Lovelace", "ada@example.com")

	var ids []types.TaskID
	for _, title := range []string{"one", "two", "three", "four", "five"} {
		id, err := repo.InsertTask(ctx, userID, title, models.NoDescription(), types.StatusInProgress)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := repo.InsertTask(ctx, userID, "done already", models.NoDescription(), types.StatusCompleted)
	require.NoError(t, err)

	// Touch the second task so it becomes the most recently updated
	clock.Advance(time.Minute)
	require.NoError(t, repo.UpdateTaskStatus(ctx, ids[1], types.StatusInProgress))

	t.Run("ordered by updated_at then id, descending", func(t *testing.T) {
		tasks, err := repo.QueryTasksByStatus(ctx, types.StatusInProgress, 0)
		require.NoError(t, err)
		require.Len(t, tasks, 5)

		got := make([]types.TaskID, len(tasks))
		for i, task := range tasks {
			got[i] = task.TaskID
			assert.Equal(t, types.StatusInProgress, task.Status)
			assert.Equal(t, "Ada Lovelace", task.Fullname)
			assert.Equal(t, "ada@example.com", task.Email)
		}
		assert.Equal(t, []types.TaskID{ids[1], ids[4], ids[3], ids[2], ids[0]}, got)
	})

	t.Run("limit caps the rows", func(t *testing.T) {
		tasks, err := repo.QueryTasksByStatus(ctx, types.StatusInProgress, 3)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, ids[1], tasks[0].TaskID)
		assert.Equal(t, ids[4], tasks[1].TaskID)
		assert.Equal(t, ids[3], tasks[2].TaskID)
	})

	t.Run("negative limit is unbounded", func(t *testing.T) {
		tasks, err := repo.QueryTasksByStatus(ctx, types.StatusInProgress, -7)
		require.NoError(t, err)
		assert.Len(t, tasks, 5)
	})

	t.Run("unknown status yields nothing", func(t *testing.T) {
		tasks, err := repo.QueryTasksByStatus(ctx, "archived", 0)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}

func TestInBatch_RollsBackOnFailure(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	err := repo.InBatch(ctx, func(b Batch) error {
		userID, err := b.InsertUser(ctx, "Grace Hopper", "grace@example.com")
		if err != nil {
			return err
		}
		statuses, err := b.Statuses(ctx)
		if err != nil {
			return err
		}
		if _, err := b.InsertTask(ctx, userID, "ok", models.NoDescription(), statuses[0].ID); err != nil {
			return err
		}
		// Unknown owner: the foreign key rejects it and the whole batch is discarded
		_, err = b.InsertTask(ctx, userID+100, "bad", models.NoDescription(), statuses[0].ID)
		return err
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIntegrity)

	users, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	tasks, err := repo.CountTasks(ctx)
	require.NoError(t, err)
	assert.Zero(t, users)
	assert.Zero(t, tasks)
}
