package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/scheduler/usecase"
	"deepwork-scheduler/internal/slot"
	"deepwork-scheduler/pkg/gcalendar"
)

var testDay = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC) // a Monday

func scheduledTask(id string, effort float64, day time.Time, slotID slot.ID) model.Task {
	return model.Task{
		ID:             id,
		Title:          "Task " + id,
		Status:         model.StatusTodo,
		Priority:       model.PriorityP1,
		EstEffortHours: ptrF(effort),
		FocusDate:      ptrT(day),
		FocusSlot:      ptrS(slotID),
	}
}

func TestSlotView_UsageSum(t *testing.T) {
	taskRepo := &mockTaskRepo{tasks: []model.Task{
		scheduledTask("t1", 1.5, testDay, slot.Early),
		scheduledTask("t2", 0.5, testDay, slot.Early),
		scheduledTask("t3", 3.0, testDay, slot.Afternoon),     // other slot
		scheduledTask("t4", 2.0, testDay.AddDate(0, 0, 1), slot.Early), // other day
		{ID: "t5", Status: model.StatusTodo},                  // unscheduled
	}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	view, err := uc.SlotView(context.Background(), testDay, slot.Early)
	if err != nil {
		t.Fatalf("SlotView: %v", err)
	}

	if got := len(view.ScheduledTasks); got != 2 {
		t.Errorf("scheduled tasks = %d, want 2", got)
	}
	if view.CurrentUsageHours != 2.0 {
		t.Errorf("usage = %v, want 2.0", view.CurrentUsageHours)
	}
	if view.CapacityHours != 2.0 {
		t.Errorf("capacity = %v, want 2.0", view.CapacityHours)
	}
}

// Completed tasks that still carry an assignment stay in the view and count
// against usage.
func TestSlotView_CompletedAssignmentStillCounts(t *testing.T) {
	done := scheduledTask("done", 1.0, testDay, slot.Early)
	done.Status = model.StatusCompleted

	taskRepo := &mockTaskRepo{tasks: []model.Task{done}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	view, err := uc.SlotView(context.Background(), testDay, slot.Early)
	if err != nil {
		t.Fatalf("SlotView: %v", err)
	}
	if len(view.ScheduledTasks) != 1 || view.CurrentUsageHours != 1.0 {
		t.Errorf("completed assignment dropped from view: %d tasks, %vh", len(view.ScheduledTasks), view.CurrentUsageHours)
	}
}

func TestSlotView_MissingEffortCountsAsZero(t *testing.T) {
	noEffort := model.Task{
		ID:        "t1",
		Status:    model.StatusTodo,
		FocusDate: ptrT(testDay),
		FocusSlot: ptrS(slot.Midday),
	}
	taskRepo := &mockTaskRepo{tasks: []model.Task{noEffort}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	view, err := uc.SlotView(context.Background(), testDay, slot.Midday)
	if err != nil {
		t.Fatalf("SlotView: %v", err)
	}
	if len(view.ScheduledTasks) != 1 || view.CurrentUsageHours != 0 {
		t.Errorf("want 1 task at 0h, got %d tasks at %vh", len(view.ScheduledTasks), view.CurrentUsageHours)
	}
}

func TestSlotView_ConflictsMappedIntoSlots(t *testing.T) {
	cal := &mockCalendar{events: []gcalendar.Event{
		{
			ID:      "e1",
			Summary: "standup",
			Start:   gcalendar.EventTime{At: testDay.Add(8 * time.Hour)}, // 08:00 → early
			End:     gcalendar.EventTime{At: testDay.Add(9 * time.Hour)},
		},
		{
			ID:      "e2",
			Summary: "conference day",
			Start:   gcalendar.EventTime{At: testDay, AllDay: true}, // all-day → meetings
			End:     gcalendar.EventTime{At: testDay.AddDate(0, 0, 1), AllDay: true},
		},
		{
			ID:      "e3",
			Summary: "next-day call",
			Start:   gcalendar.EventTime{At: testDay.AddDate(0, 0, 1).Add(8 * time.Hour)},
			End:     gcalendar.EventTime{At: testDay.AddDate(0, 0, 1).Add(9 * time.Hour)},
		},
	}}
	uc := usecase.New(&mockLogger{t: t}, &mockTaskRepo{}, &mockVentureRepo{}, cal, utcClock(t))

	early, err := uc.SlotView(context.Background(), testDay, slot.Early)
	if err != nil {
		t.Fatalf("SlotView(early): %v", err)
	}
	if len(early.ConflictingEvents) != 1 || early.ConflictingEvents[0].ID != "e1" {
		t.Errorf("early conflicts = %+v, want [e1]", early.ConflictingEvents)
	}

	meetings, err := uc.SlotView(context.Background(), testDay, slot.Meetings)
	if err != nil {
		t.Fatalf("SlotView(meetings): %v", err)
	}
	if len(meetings.ConflictingEvents) != 1 || meetings.ConflictingEvents[0].ID != "e2" {
		t.Errorf("meetings conflicts = %+v, want [e2]", meetings.ConflictingEvents)
	}
}

// No calendar integration behaves exactly like a calendar with no events.
func TestSlotView_NoCalendarEqualsEmptyCalendar(t *testing.T) {
	taskRepo := &mockTaskRepo{tasks: []model.Task{scheduledTask("t1", 1.0, testDay, slot.Early)}}

	withoutCal := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))
	withEmptyCal := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, &mockCalendar{}, utcClock(t))

	a, err := withoutCal.SlotView(context.Background(), testDay, slot.Early)
	if err != nil {
		t.Fatalf("SlotView: %v", err)
	}
	b, err := withEmptyCal.SlotView(context.Background(), testDay, slot.Early)
	if err != nil {
		t.Fatalf("SlotView: %v", err)
	}

	if len(a.ConflictingEvents) != 0 || len(b.ConflictingEvents) != 0 {
		t.Errorf("conflicts = %d / %d, want 0 / 0", len(a.ConflictingEvents), len(b.ConflictingEvents))
	}
	if a.CurrentUsageHours != b.CurrentUsageHours {
		t.Errorf("usage differs: %v vs %v", a.CurrentUsageHours, b.CurrentUsageHours)
	}
}

// A calendar outage is absorbed with a warning; the view is still served.
func TestSlotView_CalendarFailureAbsorbed(t *testing.T) {
	l := &mockLogger{t: t}
	cal := &mockCalendar{err: errors.New("quota exceeded")}
	taskRepo := &mockTaskRepo{tasks: []model.Task{scheduledTask("t1", 1.0, testDay, slot.Early)}}
	uc := usecase.New(l, taskRepo, &mockVentureRepo{}, cal, utcClock(t))

	view, err := uc.SlotView(context.Background(), testDay, slot.Early)
	if err != nil {
		t.Fatalf("calendar failure must not fail the view: %v", err)
	}
	if len(view.ConflictingEvents) != 0 {
		t.Errorf("conflicts = %d, want 0", len(view.ConflictingEvents))
	}
	if view.CurrentUsageHours != 1.0 {
		t.Errorf("usage = %v, want 1.0", view.CurrentUsageHours)
	}
	if l.warnCount() == 0 {
		t.Error("expected a warning about the calendar outage")
	}
}

// Task store failures DO propagate; they are not degraded.
func TestSlotView_TaskStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("store down")
	uc := usecase.New(&mockLogger{t: t}, &mockTaskRepo{listErr: storeErr}, &mockVentureRepo{}, nil, utcClock(t))

	if _, err := uc.SlotView(context.Background(), testDay, slot.Early); !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want %v", err, storeErr)
	}
}

func TestSlotView_MissingDate(t *testing.T) {
	uc := usecase.New(&mockLogger{t: t}, &mockTaskRepo{}, &mockVentureRepo{}, nil, utcClock(t))
	if _, err := uc.SlotView(context.Background(), time.Time{}, slot.Early); !errors.Is(err, scheduler.ErrMissingDate) {
		t.Errorf("err = %v, want ErrMissingDate", err)
	}
}

func TestSlotView_UnknownSlotFallbackCapacity(t *testing.T) {
	uc := usecase.New(&mockLogger{t: t}, &mockTaskRepo{}, &mockVentureRepo{}, nil, utcClock(t))

	view, err := uc.SlotView(context.Background(), testDay, slot.ID("siesta"))
	if err != nil {
		t.Fatalf("SlotView: %v", err)
	}
	if view.CapacityHours != slot.FallbackCapacityHours {
		t.Errorf("capacity = %v, want fallback %v", view.CapacityHours, slot.FallbackCapacityHours)
	}
}

func TestDayOverview(t *testing.T) {
	cal := &mockCalendar{events: []gcalendar.Event{
		{ID: "e1", Start: gcalendar.EventTime{At: testDay.Add(8 * time.Hour)}, End: gcalendar.EventTime{At: testDay.Add(9 * time.Hour)}},
	}}
	taskRepo := &mockTaskRepo{tasks: []model.Task{scheduledTask("t1", 2.0, testDay, slot.Afternoon)}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, cal, utcClock(t))

	views, err := uc.DayOverview(context.Background(), testDay)
	if err != nil {
		t.Fatalf("DayOverview: %v", err)
	}

	catalog := slot.Catalog()
	if len(views) != len(catalog) {
		t.Fatalf("views = %d, want %d (one per catalog slot)", len(views), len(catalog))
	}
	for i, info := range catalog {
		if views[i].SlotID != info.ID {
			t.Errorf("views[%d].SlotID = %q, want %q (catalog order)", i, views[i].SlotID, info.ID)
		}
	}

	// One collaborator round for the whole overview.
	if cal.calls != 1 {
		t.Errorf("calendar fetched %d times, want 1", cal.calls)
	}
}
