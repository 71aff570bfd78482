package models

import "github.com/thenoetrevino/tasktrack/internal/types"

// Status is one entry of the status vocabulary
type Status struct {
	ID   types.StatusID `json:"id"`
	Name string         `json:"name"`
}

// StatusNames extracts the names, preserving order
func StatusNames(statuses []Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.Name
	}
	return names
}
