package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasktrack/internal/app"
	appcli "github.com/thenoetrevino/tasktrack/internal/cli"
	"github.com/thenoetrevino/tasktrack/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance and returns stdout.
// The app travels through the context so GetCLIFromContext in the CLI package
// picks it up instead of opening a store from disk.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithStderr(t, context.Background(), testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand that also returns stderr
func ExecuteCLICommandWithStderr(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	SetupCobraCommand(cmd, args)
	ctxWithApp := appcli.WithApp(ctx, testApp)

	var stdout string
	var executeErr error
	stderr := testutil.CaptureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			executeErr = cmd.ExecuteContext(ctxWithApp)
		})
	})

	return stdout, stderr, executeErr
}
