package usecase

import (
	"context"
	"time"

	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/slot"
)

// Project combines the slot's current usage with the in-progress selection.
// Overcommit is strictly greater than capacity: a selection landing exactly
// on capacity is acceptable.
func (uc *implUseCase) Project(ctx context.Context, date time.Time, slotID slot.ID, selection []string) (scheduler.Projection, error) {
	if date.IsZero() {
		return scheduler.Projection{}, scheduler.ErrMissingDate
	}

	tasks, err := uc.taskRepo.ListTasks(ctx)
	if err != nil {
		return scheduler.Projection{}, err
	}

	events := uc.dayEvents(ctx, date)
	view := uc.buildView(date, slotID, tasks, events)

	projected := view.CurrentUsageHours + selectionEffort(tasks, selection)

	return scheduler.Projection{
		ProjectedUsageHours: projected,
		CapacityHours:       view.CapacityHours,
		IsOverCapacity:      projected > view.CapacityHours,
	}, nil
}
