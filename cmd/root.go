package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/tasktrack/internal/cli"
	taskcli "github.com/thenoetrevino/tasktrack/internal/cli/task"
	usercli "github.com/thenoetrevino/tasktrack/internal/cli/user"
	"github.com/thenoetrevino/tasktrack/internal/config"
	"github.com/thenoetrevino/tasktrack/internal/logging"
)

// NewRootCmd builds the tasktrack command tree
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "tasktrack",
		Short: "tasktrack - query and update a task-tracking database",
		Long: `tasktrack lists, adds and updates tasks in a SQLite database created
by tasktrack-seed.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logCloser, err = logging.Init(cfg.LogDir(), cfg.SlogLevel())
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
			}

			dbPath := resolveDBPath(cmd.Flags(), cfg.Database)
			slog.Debug("running command", "command", cmd.CommandPath(), "db", dbPath)

			cmd.SetContext(cli.WithDBPath(cmd.Context(), dbPath))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("db", cli.DefaultDBPath, "Path to the SQLite database (overrides config)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.AsUsageError(err)
	})

	rootCmd.AddCommand(taskcli.Commands()...)
	rootCmd.AddCommand(usercli.WithoutTasksCmd())

	return rootCmd
}

// resolveDBPath prefers an explicit --db over the configured path
func resolveDBPath(flags *pflag.FlagSet, configured string) string {
	if flag := flags.Lookup("db"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	if configured == "" {
		return cli.DefaultDBPath
	}
	return configured
}

// Execute runs tasktrack and returns the exit code
func Execute(ctx context.Context) int {
	return cli.Execute(ctx, NewRootCmd())
}
