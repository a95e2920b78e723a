package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"todo_service/internal/models"

	"github.com/google/uuid"
)

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ Events = (*EventRepository)(nil)

const sqliteTimestampLayout = "2006-01-02 15:04:05"

const insertEventSQL = `INSERT INTO task_events (id, user_id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?, ?)`

// Append inserts a new activity event. Missing EventID/OccurredAt are filled in.
func (r *EventRepository) Append(ctx context.Context, e models.TaskEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.UserID,
		e.OccurredAt.Format(sqliteTimestampLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Message,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert task event for user %d: %w", e.UserID, err)
	}
	return nil
}

// ListByUser returns the user's events filtered by [from, to] (inclusive)
// and/or type, ordered oldest first. Events of other users never appear.
func (r *EventRepository) ListByUser(ctx context.Context, userID int, from, to time.Time, typ string) ([]models.TaskEvent, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, user_id, occurred_at, type, message, meta FROM task_events WHERE ` +
		strings.Join(conds, " AND ") + " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select task events for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.TaskEvent, 0, 64)
	for rows.Next() {
		var ev models.TaskEvent
		var metaStr sql.NullString
		if err := rows.Scan(&ev.EventID, &ev.UserID, &ev.OccurredAt, &ev.Type, &ev.Message, &metaStr); err != nil {
			return nil, fmt.Errorf("scan task event row: %w", err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
