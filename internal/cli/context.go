package cli

import (
	"context"

	"github.com/thenoetrevino/tasktrack/internal/app"
)

type contextKey string

const (
	dbPathKey contextKey = "dbPath"
	appKey    contextKey = "app"
)

// DefaultDBPath is used when neither config nor flags name a store
const DefaultDBPath = "tasktrack.db"

// WithDBPath records the store path chosen by the root command
func WithDBPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, dbPathKey, path)
}

// DBPathFromContext returns the recorded store path or DefaultDBPath
func DBPathFromContext(ctx context.Context) string {
	if path, ok := ctx.Value(dbPathKey).(string); ok && path != "" {
		return path
	}
	return DefaultDBPath
}

// WithApp makes commands run against a, which stays open after they finish
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the running command: the app recorded
// with WithApp if any, otherwise one opened from the path recorded with WithDBPath.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if injected, ok := ctx.Value(appKey).(*app.App); ok && injected != nil {
		return &CLI{App: injected, ctx: ctx}, nil
	}
	return NewCLI(ctx, DBPathFromContext(ctx))
}
