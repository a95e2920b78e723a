package models

// StatusPending is the store-assigned status of a freshly created task.
const StatusPending = "pending"

// Task is a single to-do item owned by exactly one user. Only the owner can
// see or mutate it; any other caller observes it as nonexistent.
type Task struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
