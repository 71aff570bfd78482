package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// AddOutputFlags adds the agent-friendly output flags every command carries
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// FormatterFromFlags builds an OutputFormatter from --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Fail reports err through the formatter and returns it marked as reported;
// errors.Is and errors.As still see the original error.
func Fail(formatter *OutputFormatter, err error) error {
	if fmtErr := formatter.ReportError(err); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ReportedError{Err: err}
}

// RequireFlag fails with a UsageError when name was not given on the command line
func RequireFlag(cmd *cobra.Command, name string) error {
	if !cmd.Flags().Changed(name) {
		return Usagef("required flag --%s not set", name)
	}
	return nil
}

// Open returns the CLI for cmd, reporting initialization failures
func Open(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, Fail(formatter, err)
	}
	return cliInstance, nil
}

// CloseQuietly closes c, logging any failure
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
