package usecase

import (
	"context"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/slot"
)

// SlotView builds the utilization snapshot of a single (date, slot) pair.
// Pure read: derived on every call, never cached.
func (uc *implUseCase) SlotView(ctx context.Context, date time.Time, slotID slot.ID) (scheduler.SlotAssignmentView, error) {
	if date.IsZero() {
		return scheduler.SlotAssignmentView{}, scheduler.ErrMissingDate
	}

	tasks, err := uc.taskRepo.ListTasks(ctx)
	if err != nil {
		return scheduler.SlotAssignmentView{}, err
	}

	events := uc.dayEvents(ctx, date)
	return uc.buildView(date, slotID, tasks, events), nil
}

// DayOverview builds the views of every catalog slot for a date from a single
// round of collaborator reads.
func (uc *implUseCase) DayOverview(ctx context.Context, date time.Time) ([]scheduler.SlotAssignmentView, error) {
	if date.IsZero() {
		return nil, scheduler.ErrMissingDate
	}

	tasks, err := uc.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	events := uc.dayEvents(ctx, date)

	catalog := slot.Catalog()
	views := make([]scheduler.SlotAssignmentView, 0, len(catalog))
	for _, info := range catalog {
		views = append(views, uc.buildView(date, info.ID, tasks, events))
	}
	return views, nil
}

// buildView merges already-assigned tasks and calendar conflicts into a
// snapshot. No status filter is applied to scheduled tasks: completed tasks
// that still carry the assignment count against usage (historical record;
// pending product clarification).
func (uc *implUseCase) buildView(date time.Time, slotID slot.ID, tasks []model.Task, dayEvents []model.CalendarEvent) scheduler.SlotAssignmentView {
	view := scheduler.SlotAssignmentView{
		Date:          uc.clock.StartOfDay(date),
		SlotID:        slotID,
		CapacityHours: slot.CapacityOf(slotID),
	}

	for _, t := range tasks {
		if !t.IsScheduled() {
			continue
		}
		if !uc.clock.SameDay(*t.FocusDate, date) || *t.FocusSlot != slotID {
			continue
		}
		view.ScheduledTasks = append(view.ScheduledTasks, t)
		view.CurrentUsageHours += t.EffortOrZero()
	}

	for _, ev := range dayEvents {
		if slot.MapEvent(ev.Start.At, ev.Start.AllDay) == slotID {
			view.ConflictingEvents = append(view.ConflictingEvents, ev)
		}
	}

	return view
}
