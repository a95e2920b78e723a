package models

import "time"

// Event types recorded in the per-user activity trail.
const (
	EventTaskCreated = "CREATED"
	EventTaskUpdated = "UPDATED"
	EventTaskDeleted = "DELETED"
)

// TaskEvent is one audit entry describing a task mutation by its owner.
type TaskEvent struct {
	EventID    string    `json:"event_id"`
	UserID     int       `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Type       string    `json:"type"` // CREATED | UPDATED | DELETED
	Message    string    `json:"message"`
	Metadata   any       `json:"metadata,omitempty"`
}
