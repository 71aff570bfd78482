package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
)

// Execute runs root and returns the process exit code. Errors the commands
// did not report themselves (flag parsing, unknown commands) are printed here.
func Execute(ctx context.Context, root *cobra.Command) int {
	root.SilenceUsage = true
	root.SilenceErrors = true

	c, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitSuccess
	}
	if c == nil {
		c = root
	}

	var reported *ReportedError
	if !errors.As(err, &reported) {
		// root has no action of its own, so anything failing there is usage
		if c == root && ExitCodeFor(err) == ExitError {
			err = AsUsageError(err)
		}
		if fmtErr := FormatterFromFlags(c).ReportError(err); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
	}

	slog.Debug("command failed", "command", c.CommandPath(), "error", err)
	return ExitCodeFor(err)
}
