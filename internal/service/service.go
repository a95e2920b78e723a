package service

import (
	"context"

	"todo_service/internal/models"
	"todo_service/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (Identity, error)
}

// Tasks is the owner-scoped CRUD surface. Every operation takes the caller's
// user id and never exposes another user's rows.
type Tasks interface {
	Create(ctx context.Context, ownerID int, description string) (int, error)
	List(ctx context.Context, ownerID int) ([]models.Task, error)
	Update(ctx context.Context, id, ownerID int, description, status string) error
	Delete(ctx context.Context, id, ownerID int) error
}

// Activity exposes the per-user audit trail of task mutations.
type Activity interface {
	List(ctx context.Context, userID int, f ActivityFilter) ([]models.TaskEvent, error)
}

// Service aggregates all sub-services for handler wiring.
type Service struct {
	Authorization
	Tasks
	Activity
}

func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Tasks:         NewTaskService(repos.Tasks, repos.Events),
		Activity:      NewActivityService(repos.Events),
	}
}
