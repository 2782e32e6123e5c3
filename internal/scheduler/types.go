package scheduler

import (
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/slot"
)

// SlotAssignmentView is the derived utilization snapshot of a (date, slot)
// pair. It is recomputed from source data on every read and never persisted.
type SlotAssignmentView struct {
	Date              time.Time
	SlotID            slot.ID
	ScheduledTasks    []model.Task
	ConflictingEvents []model.CalendarEvent
	CurrentUsageHours float64
	CapacityHours     float64
}

// CandidateFilters narrows the candidate pool. Filters compose with AND;
// zero values mean "no filter".
type CandidateFilters struct {
	Search           string          // case-insensitive substring on title
	Priority         *model.Priority // exact tier
	VentureID        string          // exact venture
	IncludeScheduled bool            // keep tasks that already have a focus date
}

// Candidate is a ranked pool entry: the task plus display-only decoration.
type Candidate struct {
	Task         model.Task
	DaysUntilDue *int // nil when the task has no due date
	Urgency      Urgency
	UrgencyLabel string
	VentureName  string
	VentureColor string
}

// Projection is the capacity projector's output for an in-progress selection.
type Projection struct {
	ProjectedUsageHours float64
	CapacityHours       float64
	IsOverCapacity      bool
}

// CommitInput is the multi-task assignment to apply.
type CommitInput struct {
	Date      time.Time
	SlotID    slot.ID
	Selection []string
}

// TaskCommitResult is the outcome of one fanned-out assignment update.
type TaskCommitResult struct {
	TaskID string
	Err    error
}

// CommitOutput reports the batch outcome per task. The batch is not atomic:
// Succeeded and Failed can both be non-zero, and nothing is rolled back.
type CommitOutput struct {
	Results   []TaskCommitResult
	Succeeded int
	Failed    int
}
