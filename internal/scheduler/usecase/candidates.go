package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler"
)

// Candidates filters and ranks the pool of schedulable tasks. Recomputed in
// full on every call; ordering is stable with respect to input order.
func (uc *implUseCase) Candidates(ctx context.Context, filters scheduler.CandidateFilters) ([]scheduler.Candidate, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	ventureNames, ventureColors := uc.ventureLookup(ctx)

	now := uc.clock.Now()
	candidates := make([]scheduler.Candidate, 0, len(tasks))
	for _, t := range tasks {
		if !matches(t, filters) {
			continue
		}
		candidates = append(candidates, uc.decorate(t, now, ventureNames, ventureColors))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rankLess(candidates[i], candidates[j])
	})

	return candidates, nil
}

// Ventures lists the venture directory.
func (uc *implUseCase) Ventures(ctx context.Context) ([]model.Venture, error) {
	return uc.ventureRepo.ListVentures(ctx)
}

// matches applies the base pool rule and the AND-composed equality filters.
func matches(t model.Task, f scheduler.CandidateFilters) bool {
	if !t.IsOpen() {
		return false
	}
	if !f.IncludeScheduled && t.FocusDate != nil {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Priority != nil && t.Priority != *f.Priority {
		return false
	}
	if f.VentureID != "" && t.VentureID != f.VentureID {
		return false
	}
	return true
}

// rankLess orders candidates: due-dated tasks first, then ascending
// days-until-due, then priority tier. Tasks without a due date trail,
// ordered by priority alone.
func rankLess(a, b scheduler.Candidate) bool {
	switch {
	case a.DaysUntilDue != nil && b.DaysUntilDue == nil:
		return true
	case a.DaysUntilDue == nil && b.DaysUntilDue != nil:
		return false
	case a.DaysUntilDue != nil && b.DaysUntilDue != nil:
		if *a.DaysUntilDue != *b.DaysUntilDue {
			return *a.DaysUntilDue < *b.DaysUntilDue
		}
	}
	return a.Task.Priority.Rank() < b.Task.Priority.Rank()
}

func (uc *implUseCase) decorate(t model.Task, now time.Time, names, colors map[string]string) scheduler.Candidate {
	c := scheduler.Candidate{
		Task:         t,
		Urgency:      scheduler.UrgencyNone,
		VentureName:  names[t.VentureID],
		VentureColor: colors[t.VentureID],
	}
	if t.HasDueDate() {
		days := uc.clock.DaysUntil(now, *t.DueDate)
		c.DaysUntilDue = &days
		c.Urgency = scheduler.ClassifyUrgency(days)
		c.UrgencyLabel = scheduler.UrgencyLabel(days, *t.DueDate)
	}
	return c
}

// ventureLookup builds decoration maps. Directory failures degrade to
// undecorated candidates; ranking never depends on ventures being reachable.
func (uc *implUseCase) ventureLookup(ctx context.Context) (map[string]string, map[string]string) {
	names := make(map[string]string)
	colors := make(map[string]string)

	ventures, err := uc.ventureRepo.ListVentures(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "scheduler: venture directory unavailable, candidates undecorated (non-fatal): %v", err)
		return names, colors
	}

	for _, v := range ventures {
		names[v.ID] = v.Name
		colors[v.ID] = v.Color
	}
	return names, colors
}
