package scheduler

import (
	"context"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/slot"
)

// UseCase defines the business logic interface for the scheduling domain.
type UseCase interface {
	// DayOverview builds the assignment view of every catalog slot for a date.
	DayOverview(ctx context.Context, date time.Time) ([]SlotAssignmentView, error)

	// SlotView builds the assignment view of a single (date, slot) pair.
	SlotView(ctx context.Context, date time.Time, slotID slot.ID) (SlotAssignmentView, error)

	// Candidates filters and ranks the pool of schedulable tasks.
	Candidates(ctx context.Context, filters CandidateFilters) ([]Candidate, error)

	// Project combines the current slot usage with an in-progress selection.
	Project(ctx context.Context, date time.Time, slotID slot.ID, selection []string) (Projection, error)

	// Commit fans out the selection as independent assignment updates.
	// Not atomic; per-task outcomes are reported in CommitOutput.
	Commit(ctx context.Context, input CommitInput) (CommitOutput, error)

	// Ventures lists the venture directory used to decorate candidates.
	Ventures(ctx context.Context) ([]model.Venture, error)
}
