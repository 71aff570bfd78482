package cli

import (
	"errors"

	"github.com/thenoetrevino/tasktrack/internal/models"
	taskservice "github.com/thenoetrevino/tasktrack/internal/services/task"
	userservice "github.com/thenoetrevino/tasktrack/internal/services/user"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unparsable flag values, unknown commands.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown task id, unknown user id, unknown status name.
	ExitNotFound = 3

	// ExitIntegrity indicates the store rejected a write.
	// Use for: Duplicate emails, foreign-key violations.
	ExitIntegrity = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, non-positive ids, empty status names.
	ExitValidation = 5

	// ExitPrecondition indicates the store does not exist yet.
	ExitPrecondition = 6
)

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, models.ErrPrecondition):
		return ExitPrecondition
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrIntegrity):
		return ExitIntegrity
	case taskservice.IsValidation(err), errors.Is(err, userservice.ErrInvalidUserID):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code reported alongside an error in JSON mode
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitPrecondition:
		return "DATABASE_NOT_FOUND"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitIntegrity:
		return "INTEGRITY_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
