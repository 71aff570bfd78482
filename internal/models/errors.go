package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks against the typed errors below
var (
	ErrNotFound     = errors.New("not found")
	ErrIntegrity    = errors.New("integrity violation")
	ErrPrecondition = errors.New("precondition failed")
)

// NotFoundError reports a status, user or task that does not exist.
// Available lists valid alternatives when the lookup was by name.
type NotFoundError struct {
	Entity    string
	Key       string
	Available []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %s not found", e.Entity, e.Key)
	if e.Available != nil {
		msg += fmt.Sprintf(". Available: [%s]", strings.Join(quoteAll(e.Available), ", "))
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// IntegrityError wraps a uniqueness or foreign-key violation reported by the store
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

func (e *IntegrityError) Is(target error) bool { return target == ErrIntegrity }

// PreconditionError reports a store that has not been provisioned yet
type PreconditionError struct {
	Path string
	Hint string
}

func (e *PreconditionError) Error() string {
	msg := fmt.Sprintf("database not found: %s", e.Path)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "'" + v + "'"
	}
	return out
}
