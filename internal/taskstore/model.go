// Package taskstore provides the task model and a file-backed task store.
package taskstore

import (
	"fmt"
	"time"
)

// Status represents the completion state of a task.
type Status string

// Valid task status values.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// validStatuses contains all valid status values for quick lookup.
var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusCompleted: true,
}

// IsValid returns true if the status is a valid Status value.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// Task represents a single trackable unit of work.
type Task struct {
	// ID is the store-assigned identifier, unique for the lifetime of a store.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description is the optional longer text. May be empty.
	Description string `json:"description"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// CreatedAt is when the task was created. Never changes afterwards.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is set when the task transitions to completed.
	// It is null while the task is pending.
	CompletedAt *time.Time `json:"completed_at"`
}

// Complete transitions the task to completed and stamps CompletedAt.
// The entity does not guard against repeat calls: completing an already
// completed task re-stamps the timestamp. Callers must check Status first
// to treat repeat completion as a no-op.
func (t *Task) Complete(now time.Time) {
	t.Status = StatusCompleted
	t.CompletedAt = &now
}

// Validate checks that the task satisfies the store invariants.
// Returns an error describing the first violation, or nil if valid.
// The title is intentionally not checked: non-emptiness is enforced by
// the CLI layer, not the store.
func (t *Task) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("task status is invalid: %q", t.Status)
	}

	if t.CreatedAt.IsZero() {
		return fmt.Errorf("task created_at is required")
	}

	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return fmt.Errorf("completed task %d has no completed_at", t.ID)
	}

	if t.Status == StatusPending && t.CompletedAt != nil {
		return fmt.Errorf("pending task %d has completed_at set", t.ID)
	}

	return nil
}
