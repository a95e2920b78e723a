package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todo_service/internal/models"
	"todo_service/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrTaskNotFound covers both a nonexistent task and a task owned by
	// someone else. Keeping the two indistinguishable avoids leaking which
	// ids exist to non-owners.
	ErrTaskNotFound = errors.New("to-do not found")

	errEmptyDescription = errors.New("description is required")
)

// TaskService implements owner-scoped task CRUD and records an audit event
// for every successful mutation.
type TaskService struct {
	taskRepo  repository.Tasks
	eventRepo repository.Events
}

func NewTaskService(taskRepo repository.Tasks, eventRepo repository.Events) *TaskService {
	return &TaskService{taskRepo: taskRepo, eventRepo: eventRepo}
}

var _ Tasks = (*TaskService)(nil)

func (s *TaskService) Create(ctx context.Context, ownerID int, description string) (int, error) {
	if description == "" {
		// The store's NOT NULL constraint would reject this anyway; catching
		// it here keeps the error readable.
		return 0, errEmptyDescription
	}

	id, err := s.taskRepo.Create(ctx, ownerID, description)
	if err != nil {
		return 0, err
	}

	s.record(ctx, ownerID, models.EventTaskCreated, fmt.Sprintf("Task %d created", id), map[string]any{"task_id": id})
	return id, nil
}

func (s *TaskService) List(ctx context.Context, ownerID int) ([]models.Task, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Update(ctx context.Context, id, ownerID int, description, status string) error {
	affected, err := s.taskRepo.Update(ctx, id, ownerID, description, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	s.record(ctx, ownerID, models.EventTaskUpdated, fmt.Sprintf("Task %d updated", id), map[string]any{
		"task_id": id,
		"status":  status,
	})
	return nil
}

func (s *TaskService) Delete(ctx context.Context, id, ownerID int) error {
	affected, err := s.taskRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	s.record(ctx, ownerID, models.EventTaskDeleted, fmt.Sprintf("Task %d deleted", id), map[string]any{"task_id": id})
	return nil
}

// record appends an audit event. The trail is best-effort: a failed append
// never fails the task operation that triggered it.
func (s *TaskService) record(ctx context.Context, userID int, typ, msg string, meta any) {
	_ = s.eventRepo.Append(ctx, models.TaskEvent{
		EventID:    uuid.NewString(),
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Type:       typ,
		Message:    msg,
		Metadata:   meta,
	})
}
