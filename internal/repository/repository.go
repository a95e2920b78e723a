package repository

import (
	"context"
	"database/sql"
	"time"

	"todo_service/internal/models"
	"todo_service/internal/repository/db"
)

type Authorization interface {
	Create(username, passwordHash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Tasks is the owner-scoped task store. Update and Delete report only an
// affected-row count: a caller cannot tell a foreign task from a missing one.
type Tasks interface {
	Create(ctx context.Context, ownerID int, description string) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error)
	Update(ctx context.Context, id, ownerID int, description, status string) (int64, error)
	Delete(ctx context.Context, id, ownerID int) (int64, error)
}

type Events interface {
	Append(ctx context.Context, e models.TaskEvent) error
	ListByUser(ctx context.Context, userID int, from, to time.Time, typ string) ([]models.TaskEvent, error)
}

type Repository struct {
	Auth   Authorization
	Tasks  Tasks
	Events Events
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Auth:   NewUserRepository(sqlDB),
		Tasks:  NewTaskRepository(sqlDB),
		Events: NewEventRepository(sqlDB),
	}
}

// InitDB opens the SQLite store and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
