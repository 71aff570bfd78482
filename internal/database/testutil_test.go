package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// fakeClock hands out a fixed instant until advanced
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// setupTestRepo creates an in-memory store with the default schema and status vocabulary
func setupTestRepo(t *testing.T) (*Repository, *fakeClock) {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Bootstrap(ctx, db, DefaultSchema))

	clock := newFakeClock()
	repo := NewRepository(db, WithClock(clock.Now))
	require.NoError(t, repo.EnsureStatuses(ctx, types.DefaultStatuses()))

	return repo, clock
}

// setupTestDBFile creates a file-backed store for tests that reopen the database
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasktrack-test.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, Bootstrap(ctx, db, DefaultSchema))
	require.NoError(t, NewRepository(db).EnsureStatuses(ctx, types.DefaultStatuses()))
	require.NoError(t, db.Close())

	return path
}

// createTestUser inserts a user and returns its id
func createTestUser(t *testing.T, repo *Repository, fullname, email string) types.UserID {
	t.Helper()
	id, err := repo.InsertUser(context.Background(), fullname, email)
	require.NoError(t, err)
	return id
}
