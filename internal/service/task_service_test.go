package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo_service/internal/models"
)

// mockTaskRepo is an in-test mock for repository.Tasks.
type mockTaskRepo struct {
	createID   int
	createErr  error
	listResp   []models.Task
	listErr    error
	updateRows int64
	updateErr  error
	deleteRows int64
	deleteErr  error

	lastCreateOwner int
	lastCreateDesc  string
	updateCalls     int
	deleteCalls     int
}

func (m *mockTaskRepo) Create(ctx context.Context, ownerID int, description string) (int, error) {
	m.lastCreateOwner = ownerID
	m.lastCreateDesc = description
	return m.createID, m.createErr
}

func (m *mockTaskRepo) ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	return m.listResp, m.listErr
}

func (m *mockTaskRepo) Update(ctx context.Context, id, ownerID int, description, status string) (int64, error) {
	m.updateCalls++
	return m.updateRows, m.updateErr
}

func (m *mockTaskRepo) Delete(ctx context.Context, id, ownerID int) (int64, error) {
	m.deleteCalls++
	return m.deleteRows, m.deleteErr
}

// mockEventRepo is an in-test mock for repository.Events.
type mockEventRepo struct {
	appendErr error
	appended  []models.TaskEvent

	listResp []models.TaskEvent
	listErr  error
	lastUser int
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventRepo) Append(ctx context.Context, e models.TaskEvent) error {
	m.appended = append(m.appended, e)
	return m.appendErr
}

func (m *mockEventRepo) ListByUser(ctx context.Context, userID int, from, to time.Time, typ string) ([]models.TaskEvent, error) {
	m.lastUser = userID
	m.lastFrom = from
	m.lastTo = to
	m.lastType = typ
	return m.listResp, m.listErr
}

func TestTaskService_Create(t *testing.T) {
	tasks := &mockTaskRepo{createID: 5}
	events := &mockEventRepo{}
	svc := NewTaskService(tasks, events)

	id, err := svc.Create(context.Background(), 1, "buy milk")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 5 {
		t.Fatalf("expected id 5, got %d", id)
	}
	if tasks.lastCreateOwner != 1 || tasks.lastCreateDesc != "buy milk" {
		t.Fatalf("repo called with owner=%d desc=%q", tasks.lastCreateOwner, tasks.lastCreateDesc)
	}

	if len(events.appended) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(events.appended))
	}
	ev := events.appended[0]
	if ev.Type != models.EventTaskCreated || ev.UserID != 1 {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestTaskService_Create_EmptyDescription(t *testing.T) {
	tasks := &mockTaskRepo{}
	events := &mockEventRepo{}
	svc := NewTaskService(tasks, events)

	if _, err := svc.Create(context.Background(), 1, ""); err == nil {
		t.Fatalf("expected error for empty description")
	}
	if len(events.appended) != 0 {
		t.Fatalf("no audit event expected on failure, got %d", len(events.appended))
	}
}

func TestTaskService_Create_AuditFailureDoesNotFailOperation(t *testing.T) {
	tasks := &mockTaskRepo{createID: 3}
	events := &mockEventRepo{appendErr: errors.New("events table gone")}
	svc := NewTaskService(tasks, events)

	id, err := svc.Create(context.Background(), 1, "buy milk")
	if err != nil {
		t.Fatalf("audit failure must not surface: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
}

func TestTaskService_Update(t *testing.T) {
	tests := []struct {
		name       string
		updateRows int64
		updateErr  error
		wantErr    error
		wantEvents int
	}{
		{name: "matched row updates and records an event", updateRows: 1, wantEvents: 1},
		{name: "zero affected rows means not found or not yours", updateRows: 0, wantErr: ErrTaskNotFound},
		{name: "store error passes through", updateErr: errors.New("db down"), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := &mockTaskRepo{updateRows: tt.updateRows, updateErr: tt.updateErr}
			events := &mockEventRepo{}
			svc := NewTaskService(tasks, events)

			err := svc.Update(context.Background(), 4, 1, "new text", "done")

			switch {
			case tt.updateErr != nil:
				if !errors.Is(err, tt.updateErr) {
					t.Fatalf("expected store error, got %v", err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			if len(events.appended) != tt.wantEvents {
				t.Fatalf("expected %d audit events, got %d", tt.wantEvents, len(events.appended))
			}
		})
	}
}

func TestTaskService_Delete(t *testing.T) {
	t.Run("zero affected rows yields ErrTaskNotFound", func(t *testing.T) {
		tasks := &mockTaskRepo{deleteRows: 0}
		events := &mockEventRepo{}
		svc := NewTaskService(tasks, events)

		if err := svc.Delete(context.Background(), 9, 2); !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
		if len(events.appended) != 0 {
			t.Fatalf("no audit event expected on miss")
		}
	})

	t.Run("owner delete succeeds and records an event", func(t *testing.T) {
		tasks := &mockTaskRepo{deleteRows: 1}
		events := &mockEventRepo{}
		svc := NewTaskService(tasks, events)

		if err := svc.Delete(context.Background(), 9, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events.appended) != 1 || events.appended[0].Type != models.EventTaskDeleted {
			t.Fatalf("expected one DELETED event, got %+v", events.appended)
		}
	})
}

func TestTaskService_List_PassesThrough(t *testing.T) {
	want := []models.Task{{ID: 1, UserID: 2, Description: "buy milk", Status: models.StatusPending}}
	tasks := &mockTaskRepo{listResp: want}
	svc := NewTaskService(tasks, &mockEventRepo{})

	got, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("unexpected tasks: %+v", got)
	}
}
