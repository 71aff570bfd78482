package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	closer, err := Init(dir, slog.LevelInfo)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	Logger.Debug("hidden below level")
	Logger.Info("task created", "task_id", 42)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "task created")
	assert.Contains(t, string(data), "task_id=42")
	assert.NotContains(t, string(data), "hidden below level")
}

func TestInit_FallsBackToDiscard(t *testing.T) {
	// a regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	closer, err := Init(filepath.Join(blocker, "logs"), slog.LevelInfo)
	assert.Error(t, err)
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())

	assert.NotPanics(t, func() { Logger.Info("goes nowhere") })
}
