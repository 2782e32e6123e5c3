package model

import (
	"time"

	"deepwork-scheduler/internal/slot"
)

// Status is a task's workflow state in the external task store.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

// Priority is the ordered urgency tier of a task. Lower rank means more urgent.
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// Rank returns the sort rank of the priority, P0 first. Unknown tiers sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityP0:
		return 0
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	default:
		return 4
	}
}

// Task is the slice of the external task store's record that the scheduler
// reads and writes. Only the three assignment fields (FocusDate, FocusSlot,
// DayID) are ever written back.
//
// Invariant: FocusDate and FocusSlot are either both set or both nil.
type Task struct {
	ID             string
	Title          string
	Status         Status
	Priority       Priority
	VentureID      string
	EstEffortHours *float64
	DueDate        *time.Time
	FocusDate      *time.Time
	FocusSlot      *slot.ID
}

// EffortOrZero returns the estimated effort in hours, treating absent as 0.
func (t Task) EffortOrZero() float64 {
	if t.EstEffortHours == nil {
		return 0
	}
	return *t.EstEffortHours
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// IsScheduled reports whether the task is already assigned to a focus slot.
func (t Task) IsScheduled() bool {
	return t.FocusDate != nil && t.FocusSlot != nil
}

// IsOpen reports whether the task is eligible for scheduling at all.
// Completed and on-hold tasks are never candidates.
func (t Task) IsOpen() bool {
	return t.Status != StatusCompleted && t.Status != StatusOnHold
}
