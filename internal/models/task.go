package models

import (
	"time"

	"github.com/thenoetrevino/tasktrack/internal/types"
)

// Task is a single row of the tasks table
type Task struct {
	ID          types.TaskID   `json:"id"`
	Title       string         `json:"title"`
	Description Description    `json:"description"`
	StatusID    types.StatusID `json:"status_id"`
	UserID      types.UserID   `json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// GetID lets output formatters print only the identifier in quiet mode
func (t *Task) GetID() int64 { return int64(t.ID) }

// TaskWithUser is the joined view returned by status queries.
// It carries the owning user's name and email alongside the task.
type TaskWithUser struct {
	TaskID    types.TaskID `json:"task_id"`
	Title     string       `json:"title"`
	Status    string       `json:"status"`
	UserID    types.UserID `json:"user_id"`
	Fullname  string       `json:"fullname"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// GetID lets output formatters print only the identifier in quiet mode
func (t TaskWithUser) GetID() int64 { return int64(t.TaskID) }
