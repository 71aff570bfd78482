// Package user identifies the operating-system account running tasktrack,
// which is attached to log records written by the CLI.
package user

import (
	"os"
	osuser "os/user"
)

// Unknown is reported when neither the OS nor the environment names the account
const Unknown = "unknown"

// GetCurrentUsername returns the login name of the current OS account.
// It falls back to $USER, then to Unknown, and never returns "".
func GetCurrentUsername() string {
	return resolveUsername(osuser.Current, os.Getenv)
}

func resolveUsername(current func() (*osuser.User, error), getenv func(string) string) string {
	if u, err := current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := getenv("USER"); name != "" {
		return name
	}
	return Unknown
}
