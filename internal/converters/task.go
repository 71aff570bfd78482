// Package converters flattens domain models into string records for
// tabular output (terminal tables and CSV export).
//
// Every converter comes as a pair: a fixed header row and a function
// producing one record per model, in the same column order.
//
// Example usage:
//
//	headers := converters.TaskWithUserHeaders
//	rows := converters.TasksWithUserToRecords(tasks)
package converters

import (
	"strconv"
	"time"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// TimeLayout renders timestamps in records; microseconds keep equal-second rows distinguishable
const TimeLayout = "2006-01-02 15:04:05.000000"

// TaskWithUserHeaders are the column names of a task-with-user record
var TaskWithUserHeaders = []string{"task_id", "title", "status", "user_id", "fullname", "email", "created_at", "updated_at"}

// TaskWithUserToRecord converts one joined row.
//
// Timestamps are rendered in UTC; a zero time renders as an empty cell.
func TaskWithUserToRecord(t models.TaskWithUser) []string {
	return []string{
		strconv.FormatInt(int64(t.TaskID), 10),
		t.Title,
		t.Status,
		strconv.FormatInt(int64(t.UserID), 10),
		t.Fullname,
		t.Email,
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	}
}

// TasksWithUserToRecords converts a slice, preserving order
func TasksWithUserToRecords(tasks []models.TaskWithUser) [][]string {
	records := make([][]string, len(tasks))
	for i, t := range tasks {
		records[i] = TaskWithUserToRecord(t)
	}
	return records
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}
