package usecase

import (
	"context"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/pkg/gcalendar"
)

// dayEvents returns the calendar events of the given date. Fetch failures and
// a missing integration both degrade to "no known conflicts" — an empty list,
// never an error. Outages are therefore invisible here; that trade-off is
// deliberate.
func (uc *implUseCase) dayEvents(ctx context.Context, date time.Time) []model.CalendarEvent {
	if uc.calendar == nil {
		return nil
	}

	weekStart := uc.clock.WeekStart(date)
	events, err := uc.calendar.GetWeek(ctx, weekStart)
	if err != nil {
		uc.l.Warnf(ctx, "scheduler: calendar fetch failed, assuming no conflicts (non-fatal): %v", err)
		return nil
	}

	out := make([]model.CalendarEvent, 0, len(events))
	for _, ev := range events {
		converted := toModelEvent(ev)
		if uc.clock.SameDay(converted.Start.At, date) {
			out = append(out, converted)
		}
	}
	return out
}

func toModelEvent(ev gcalendar.Event) model.CalendarEvent {
	return model.CalendarEvent{
		ID:      ev.ID,
		Summary: ev.Summary,
		Start: model.EventTime{
			At:     ev.Start.At,
			AllDay: ev.Start.AllDay,
		},
		End: model.EventTime{
			At:     ev.End.At,
			AllDay: ev.End.AllDay,
		},
		ConferenceLink: ev.ConferenceLink,
	}
}

// selectionEffort sums the estimated effort of the selected tasks, treating
// absent effort as zero. Unknown ids contribute nothing.
func selectionEffort(tasks []model.Task, selection []string) float64 {
	selected := make(map[string]struct{}, len(selection))
	for _, id := range selection {
		selected[id] = struct{}{}
	}

	var total float64
	for _, t := range tasks {
		if _, ok := selected[t.ID]; ok {
			total += t.EffortOrZero()
		}
	}
	return total
}
