package cli

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/tasktrack/internal/app"
	"github.com/thenoetrevino/tasktrack/internal/database"
	"github.com/thenoetrevino/tasktrack/internal/logging"
	"github.com/thenoetrevino/tasktrack/internal/user"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context

	// owned is false when the app was injected and someone else closes it
	owned bool
}

// NewCLI opens the store at dbPath. The store must already exist; a missing
// file is reported as a PreconditionError pointing at tasktrack-seed.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	db, err := database.OpenExisting(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	logger := logging.Logger.With("os_user", user.GetCurrentUsername(), "db", dbPath)
	slog.Debug("opened store", "path", dbPath)

	application := app.New(database.NewRepository(db), app.WithLogger(logger))

	return &CLI{
		App:   application,
		ctx:   ctx,
		owned: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
