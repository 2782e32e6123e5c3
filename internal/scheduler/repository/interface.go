package repository

import (
	"context"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/slot"
)

// AssignmentPatch is the partial update written back to the task store.
// All three fields are always present on the wire; nil marshals as JSON null,
// which clears the assignment. The scheduler either assigns (all set) or
// clears (all nil) — mixed states would break the both-present-or-both-absent
// invariant on (FocusDate, FocusSlot).
type AssignmentPatch struct {
	FocusDate *time.Time
	FocusSlot *slot.ID
	DayID     *string
}

// TaskRepository is the read/write contract against the external task store.
// The scheduler never creates or deletes tasks.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	UpdateAssignment(ctx context.Context, taskID string, patch AssignmentPatch) (model.Task, error)
}

// VentureRepository is the read contract against the venture directory.
type VentureRepository interface {
	ListVentures(ctx context.Context) ([]model.Venture, error)
}
