package repository

import (
	"context"
	"database/sql"
	"fmt"

	"todo_service/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

var _ Tasks = (*TaskRepository)(nil)

const (
	insertTaskSQL        = `INSERT INTO todos (user_id, description) VALUES (?, ?)`
	selectTasksByUserSQL = `SELECT id, user_id, description, status FROM todos WHERE user_id = ? ORDER BY id`
	updateTaskSQL        = `UPDATE todos SET description = ?, status = ? WHERE id = ? AND user_id = ?`
	deleteTaskSQL        = `DELETE FROM todos WHERE id = ? AND user_id = ?`
)

// Create inserts a task for the owner and returns its ID. Status is left to
// the store's DEFAULT 'pending'.
func (r *TaskRepository) Create(ctx context.Context, ownerID int, description string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertTaskSQL, ownerID, description)
	if err != nil {
		return 0, fmt.Errorf("insert task for user %d: %w", ownerID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task: %w", err)
	}
	return int(lastID), nil
}

// ListByOwner returns the owner's tasks in insertion order. A user with no
// tasks gets an empty slice, not nil.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByUserSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Status); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update rewrites description and status for the (id, owner) pair and returns
// how many rows matched. Zero covers both "no such task" and "not the owner".
func (r *TaskRepository) Update(ctx context.Context, id, ownerID int, description, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateTaskSQL, description, status, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("update task %d: %w", id, err)
	}
	return res.RowsAffected()
}

// Delete removes the (id, owner) pair, with the same affected-count semantics
// as Update.
func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}
	return res.RowsAffected()
}
