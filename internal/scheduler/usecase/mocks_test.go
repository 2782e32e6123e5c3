package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler/repository"
	"deepwork-scheduler/internal/slot"
	"deepwork-scheduler/pkg/dates"
	"deepwork-scheduler/pkg/gcalendar"
)

// mockLogger records messages; the destructive levels fail the test.
type mockLogger struct {
	t     *testing.T
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}

func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Warn(ctx context.Context, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprint(args...))
}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}
func (m *mockLogger) DPanic(ctx context.Context, args ...any) { m.t.Fatal(args...) }
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {
	m.t.Fatalf(format, args...)
}
func (m *mockLogger) Panic(ctx context.Context, args ...any) { m.t.Fatal(args...) }
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any) {
	m.t.Fatalf(format, args...)
}
func (m *mockLogger) Fatal(ctx context.Context, args ...any) { m.t.Fatal(args...) }
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any) {
	m.t.Fatalf(format, args...)
}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warns)
}

// mockTaskRepo serves a fixed task list and records assignment updates.
type mockTaskRepo struct {
	mu      sync.Mutex
	tasks   []model.Task
	listErr error
	// failIDs maps task ids to the error their update should return.
	failIDs map[string]error
	updates map[string]repository.AssignmentPatch
}

func (m *mockTaskRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockTaskRepo) UpdateAssignment(ctx context.Context, taskID string, patch repository.AssignmentPatch) (model.Task, error) {
	// The real repository issues the PATCH with this context; honor
	// cancellation the same way net/http would.
	if err := ctx.Err(); err != nil {
		return model.Task{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failIDs[taskID]; ok {
		return model.Task{}, err
	}
	if m.updates == nil {
		m.updates = make(map[string]repository.AssignmentPatch)
	}
	m.updates[taskID] = patch
	return model.Task{ID: taskID, FocusDate: patch.FocusDate, FocusSlot: patch.FocusSlot}, nil
}

func (m *mockTaskRepo) updatedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.updates))
	for id := range m.updates {
		out = append(out, id)
	}
	return out
}

type mockVentureRepo struct {
	ventures []model.Venture
	err      error
}

func (m *mockVentureRepo) ListVentures(ctx context.Context) ([]model.Venture, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ventures, nil
}

type mockCalendar struct {
	events []gcalendar.Event
	err    error
	calls  int
}

func (m *mockCalendar) GetWeek(ctx context.Context, weekStart time.Time) ([]gcalendar.Event, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func utcClock(t *testing.T) *dates.Clock {
	t.Helper()
	c, err := dates.NewClock("UTC")
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return c
}

// fixedClock pins "now" so ranking assertions never depend on wall time.
func fixedClock(t *testing.T, at time.Time) *dates.Clock {
	t.Helper()
	c, err := dates.NewClockAt("UTC", func() time.Time { return at })
	if err != nil {
		t.Fatalf("NewClockAt: %v", err)
	}
	return c
}

func ptrF(v float64) *float64               { return &v }
func ptrT(v time.Time) *time.Time           { return &v }
func ptrS(v slot.ID) *slot.ID               { return &v }
func ptrP(p model.Priority) *model.Priority { return &p }
