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
)

func TestProject_Overcommit(t *testing.T) {
	// Early slot: 2.0h capacity, 1.5h already scheduled.
	existing := scheduledTask("existing", 1.5, testDay, slot.Early)
	pick := openTask("pick", "new work", model.PriorityP1)
	pick.EstEffortHours = ptrF(1.0)

	taskRepo := &mockTaskRepo{tasks: []model.Task{existing, pick}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	got, err := uc.Project(context.Background(), testDay, slot.Early, []string{"pick"})
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	if got.ProjectedUsageHours != 2.5 {
		t.Errorf("projected = %v, want 2.5", got.ProjectedUsageHours)
	}
	if got.CapacityHours != 2.0 {
		t.Errorf("capacity = %v, want 2.0", got.CapacityHours)
	}
	if !got.IsOverCapacity {
		t.Error("2.5h against 2.0h capacity must flag overcommit")
	}
}

// Landing exactly on capacity is not an overcommit.
func TestProject_ExactCapacityIsFine(t *testing.T) {
	existing := scheduledTask("existing", 1.0, testDay, slot.Early)
	pick := openTask("pick", "new work", model.PriorityP1)
	pick.EstEffortHours = ptrF(1.0)

	taskRepo := &mockTaskRepo{tasks: []model.Task{existing, pick}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	got, err := uc.Project(context.Background(), testDay, slot.Early, []string{"pick"})
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.ProjectedUsageHours != 2.0 || got.IsOverCapacity {
		t.Errorf("projected = %v over=%v, want 2.0 over=false", got.ProjectedUsageHours, got.IsOverCapacity)
	}
}

func TestProject_EmptySelection(t *testing.T) {
	existing := scheduledTask("existing", 1.5, testDay, slot.Early)
	taskRepo := &mockTaskRepo{tasks: []model.Task{existing}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	got, err := uc.Project(context.Background(), testDay, slot.Early, nil)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.ProjectedUsageHours != 1.5 {
		t.Errorf("projected = %v, want current usage 1.5", got.ProjectedUsageHours)
	}
}

// Selected ids that don't resolve to a task contribute nothing.
func TestProject_UnknownSelectionIgnored(t *testing.T) {
	uc := usecase.New(&mockLogger{t: t}, &mockTaskRepo{}, &mockVentureRepo{}, nil, utcClock(t))

	got, err := uc.Project(context.Background(), testDay, slot.Early, []string{"ghost"})
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.ProjectedUsageHours != 0 {
		t.Errorf("projected = %v, want 0", got.ProjectedUsageHours)
	}
}

func TestProject_MissingEffortSelectionCountsZero(t *testing.T) {
	pick := openTask("pick", "unsized work", model.PriorityP1) // no effort estimate
	taskRepo := &mockTaskRepo{tasks: []model.Task{pick}}
	uc := usecase.New(&mockLogger{t: t}, taskRepo, &mockVentureRepo{}, nil, utcClock(t))

	got, err := uc.Project(context.Background(), testDay, slot.Early, []string{"pick"})
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got.ProjectedUsageHours != 0 || got.IsOverCapacity {
		t.Errorf("projected = %v over=%v, want 0 over=false", got.ProjectedUsageHours, got.IsOverCapacity)
	}
}

func TestProject_MissingDate(t *testing.T) {
	uc := usecase.New(&mockLogger{t: t}, &mockTaskRepo{}, &mockVentureRepo{}, nil, utcClock(t))
	if _, err := uc.Project(context.Background(), time.Time{}, slot.Early, []string{"x"}); !errors.Is(err, scheduler.ErrMissingDate) {
		t.Errorf("err = %v, want ErrMissingDate", err)
	}
}
