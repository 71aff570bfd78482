package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrEmptyStatus   = errors.New("status name cannot be empty")

	ErrInvalidDescription = errors.New("invalid task description")
)

// IsValidation reports whether err is one of the request validation errors above
func IsValidation(err error) bool {
	for _, target := range []error{ErrEmptyTitle, ErrTitleTooLong, ErrInvalidTaskID, ErrInvalidUserID, ErrEmptyStatus, ErrInvalidDescription} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
