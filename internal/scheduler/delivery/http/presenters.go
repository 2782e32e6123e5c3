package http

import (
	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/slot"
)

// --- Response DTOs ---

type slotInfoResp struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	TimeRange     string  `json:"time_range"`
	CapacityHours float64 `json:"capacity_hours"`
}

type slotsResp struct {
	Slots []slotInfoResp `json:"slots"`
}

func newSlotsResp(catalog []slot.Info) slotsResp {
	slots := make([]slotInfoResp, len(catalog))
	for i, info := range catalog {
		slots[i] = slotInfoResp{
			ID:            string(info.ID),
			Label:         info.Label,
			TimeRange:     info.TimeRange,
			CapacityHours: info.CapacityHours,
		}
	}
	return slotsResp{Slots: slots}
}

type taskResp struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	VentureID      string   `json:"venture_id,omitempty"`
	EstEffortHours *float64 `json:"est_effort_hours,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	FocusDate      *string  `json:"focus_date,omitempty"`
	FocusSlot      *string  `json:"focus_slot,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:             t.ID,
		Title:          t.Title,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		VentureID:      t.VentureID,
		EstEffortHours: t.EstEffortHours,
	}
	if t.DueDate != nil {
		s := t.DueDate.Format("2006-01-02")
		resp.DueDate = &s
	}
	if t.IsScheduled() {
		d := t.FocusDate.Format("2006-01-02")
		sl := string(*t.FocusSlot)
		resp.FocusDate = &d
		resp.FocusSlot = &sl
	}
	return resp
}

type eventResp struct {
	ID             string `json:"id"`
	Summary        string `json:"summary"`
	Start          string `json:"start"`
	End            string `json:"end"`
	AllDay         bool   `json:"all_day"`
	ConferenceLink string `json:"conference_link,omitempty"`
}

func newEventResp(ev model.CalendarEvent) eventResp {
	format := "2006-01-02T15:04:05Z07:00"
	if ev.IsAllDay() {
		format = "2006-01-02"
	}
	return eventResp{
		ID:             ev.ID,
		Summary:        ev.Summary,
		Start:          ev.Start.At.Format(format),
		End:            ev.End.At.Format(format),
		AllDay:         ev.IsAllDay(),
		ConferenceLink: ev.ConferenceLink,
	}
}

type slotViewResp struct {
	Date              string      `json:"date"`
	Slot              string      `json:"slot"`
	ScheduledTasks    []taskResp  `json:"scheduled_tasks"`
	ConflictingEvents []eventResp `json:"conflicting_events"`
	CurrentUsageHours float64     `json:"current_usage_hours"`
	CapacityHours     float64     `json:"capacity_hours"`
}

func newSlotViewResp(view scheduler.SlotAssignmentView) slotViewResp {
	tasks := make([]taskResp, len(view.ScheduledTasks))
	for i, t := range view.ScheduledTasks {
		tasks[i] = newTaskResp(t)
	}
	events := make([]eventResp, len(view.ConflictingEvents))
	for i, ev := range view.ConflictingEvents {
		events[i] = newEventResp(ev)
	}
	return slotViewResp{
		Date:              view.Date.Format("2006-01-02"),
		Slot:              string(view.SlotID),
		ScheduledTasks:    tasks,
		ConflictingEvents: events,
		CurrentUsageHours: view.CurrentUsageHours,
		CapacityHours:     view.CapacityHours,
	}
}

type dayOverviewResp struct {
	Date  string         `json:"date"`
	Slots []slotViewResp `json:"slots"`
}

func newDayOverviewResp(views []scheduler.SlotAssignmentView) dayOverviewResp {
	resp := dayOverviewResp{Slots: make([]slotViewResp, len(views))}
	for i, view := range views {
		resp.Slots[i] = newSlotViewResp(view)
	}
	if len(views) > 0 {
		resp.Date = views[0].Date.Format("2006-01-02")
	}
	return resp
}

type candidateResp struct {
	Task         taskResp `json:"task"`
	DaysUntilDue *int     `json:"days_until_due,omitempty"`
	Urgency      string   `json:"urgency"`
	UrgencyLabel string   `json:"urgency_label,omitempty"`
	VentureName  string   `json:"venture_name,omitempty"`
	VentureColor string   `json:"venture_color,omitempty"`
}

type candidatesResp struct {
	Candidates []candidateResp `json:"candidates"`
	Count      int             `json:"count"`
}

func newCandidatesResp(candidates []scheduler.Candidate) candidatesResp {
	out := make([]candidateResp, len(candidates))
	for i, c := range candidates {
		out[i] = candidateResp{
			Task:         newTaskResp(c.Task),
			DaysUntilDue: c.DaysUntilDue,
			Urgency:      string(c.Urgency),
			UrgencyLabel: c.UrgencyLabel,
			VentureName:  c.VentureName,
			VentureColor: c.VentureColor,
		}
	}
	return candidatesResp{Candidates: out, Count: len(out)}
}

type ventureResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type venturesResp struct {
	Ventures []ventureResp `json:"ventures"`
}

func newVenturesResp(ventures []model.Venture) venturesResp {
	out := make([]ventureResp, len(ventures))
	for i, v := range ventures {
		out[i] = ventureResp{ID: v.ID, Name: v.Name, Color: v.Color, Icon: v.Icon}
	}
	return venturesResp{Ventures: out}
}

type sessionResp struct {
	SessionID string   `json:"session_id"`
	Selection []string `json:"selection"`
}

func newSessionResp(sess *scheduler.Session) sessionResp {
	return sessionResp{
		SessionID: sess.ID,
		Selection: sess.Selection(),
	}
}

type projectionResp struct {
	ProjectedUsageHours float64 `json:"projected_usage_hours"`
	CapacityHours       float64 `json:"capacity_hours"`
	IsOverCapacity      bool    `json:"is_over_capacity"`
}

func newProjectionResp(p scheduler.Projection) projectionResp {
	return projectionResp{
		ProjectedUsageHours: p.ProjectedUsageHours,
		CapacityHours:       p.CapacityHours,
		IsOverCapacity:      p.IsOverCapacity,
	}
}

type taskCommitResultResp struct {
	TaskID string `json:"task_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

type commitResp struct {
	Results   []taskCommitResultResp `json:"results"`
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
	Refresh   bool                   `json:"refresh"`
}

func newCommitResp(out scheduler.CommitOutput) commitResp {
	return commitResp{
		Results:   newTaskCommitResults(out.Results),
		Succeeded: out.Succeeded,
		Failed:    out.Failed,
		Refresh:   true,
	}
}

func newTaskCommitResults(results []scheduler.TaskCommitResult) []taskCommitResultResp {
	out := make([]taskCommitResultResp, len(results))
	for i, res := range results {
		out[i] = taskCommitResultResp{TaskID: res.TaskID, OK: res.Err == nil}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}
	return out
}

// commitFailureData shapes the per-task breakdown attached to a failed commit
// response.
func commitFailureData(out scheduler.CommitOutput) map[string]interface{} {
	return map[string]interface{}{
		"results":   newTaskCommitResults(out.Results),
		"succeeded": out.Succeeded,
		"failed":    out.Failed,
	}
}
