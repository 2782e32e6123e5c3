package usecase

import (
	"context"
	"time"

	"deepwork-scheduler/internal/scheduler/repository"
	"deepwork-scheduler/pkg/dates"
	"deepwork-scheduler/pkg/gcalendar"
	pkgLog "deepwork-scheduler/pkg/log"
)

// CalendarClient abstracts the Google Calendar collaborator for mocking.
type CalendarClient interface {
	GetWeek(ctx context.Context, weekStart time.Time) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	taskRepo    repository.TaskRepository
	ventureRepo repository.VentureRepository
	calendar    CalendarClient // nil means no integration connected
	clock       *dates.Clock
}

// New creates a new scheduler UseCase instance. A nil calendar client is a
// valid, non-error state: the slot views simply carry no conflicts.
func New(
	l pkgLog.Logger,
	taskRepo repository.TaskRepository,
	ventureRepo repository.VentureRepository,
	calendar CalendarClient,
	clock *dates.Clock,
) *implUseCase {
	return &implUseCase{
		l:           l,
		taskRepo:    taskRepo,
		ventureRepo: ventureRepo,
		calendar:    calendar,
		clock:       clock,
	}
}
