package converters

import (
	"strconv"

	"github.com/thenoetrevino/tasktrack/internal/models"
)

// UserHeaders are the column names of a user record
var UserHeaders = []string{"id", "fullname", "email", "created_at"}

// UserToRecord converts one user
func UserToRecord(u models.User) []string {
	return []string{
		strconv.FormatInt(int64(u.ID), 10),
		u.Fullname,
		u.Email,
		formatTime(u.CreatedAt),
	}
}

// UsersToRecords converts a slice, preserving order
func UsersToRecords(users []models.User) [][]string {
	records := make([][]string, len(users))
	for i, u := range users {
		records[i] = UserToRecord(u)
	}
	return records
}
