package database

import (
	"database/sql"

	"github.com/thenoetrevino/tasktrack/internal/models"
	"github.com/thenoetrevino/tasktrack/internal/types"
)

// Row types carry the db tags sqlx scans into; models stay free of storage concerns.

type statusRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r statusRow) toModel() models.Status {
	return models.Status{ID: types.StatusID(r.ID), Name: r.Name}
}

type userRow struct {
	ID        int64     `db:"id"`
	Fullname  string    `db:"fullname"`
	Email     string    `db:"email"`
	CreatedAt timestamp `db:"created_at"`
}

func (r userRow) toModel() models.User {
	return models.User{
		ID:        types.UserID(r.ID),
		Fullname:  r.Fullname,
		Email:     r.Email,
		CreatedAt: r.CreatedAt.Time,
	}
}

type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	StatusID    int64          `db:"status_id"`
	UserID      int64          `db:"user_id"`
	CreatedAt   timestamp      `db:"created_at"`
	UpdatedAt   timestamp      `db:"updated_at"`
}

func (r taskRow) toModel() *models.Task {
	return &models.Task{
		ID:          types.TaskID(r.ID),
		Title:       r.Title,
		Description: models.DescriptionFromNull(r.Description),
		StatusID:    types.StatusID(r.StatusID),
		UserID:      types.UserID(r.UserID),
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

type taskWithUserRow struct {
	TaskID    int64     `db:"task_id"`
	Title     string    `db:"title"`
	Status    string    `db:"status"`
	UserID    int64     `db:"user_id"`
	Fullname  string    `db:"fullname"`
	Email     string    `db:"email"`
	CreatedAt timestamp `db:"created_at"`
	UpdatedAt timestamp `db:"updated_at"`
}

func (r taskWithUserRow) toModel() models.TaskWithUser {
	return models.TaskWithUser{
		TaskID:    types.TaskID(r.TaskID),
		Title:     r.Title,
		Status:    r.Status,
		UserID:    types.UserID(r.UserID),
		Fullname:  r.Fullname,
		Email:     r.Email,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}
