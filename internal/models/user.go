package models

import (
	"time"

	"github.com/thenoetrevino/tasktrack/internal/types"
)

// User owns zero or more tasks
type User struct {
	ID        types.UserID `json:"id"`
	Fullname  string       `json:"fullname"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
}

// GetID lets output formatters print only the identifier in quiet mode
func (u User) GetID() int64 { return int64(u.ID) }
