package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError marks a command invoked with missing or malformed arguments
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// AsUsageError wraps err unless it is nil
func AsUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ReportedError wraps an error that has already been shown to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// NoArgs rejects positional arguments with a UsageError
func NoArgs(cmd *cobra.Command, args []string) error {
	return AsUsageError(cobra.NoArgs(cmd, args))
}
