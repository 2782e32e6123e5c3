package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/slot"
)

// processSlotQuery parses the (date, slot) query pair shared by the slot view
// and projection endpoints.
func (h *handler) processSlotQuery(c *gin.Context) (time.Time, slot.ID, error) {
	date, err := h.clock.ParseDay(c.Query("date"))
	if err != nil {
		return time.Time{}, "", err
	}

	slotID := slot.ID(c.Query("slot"))
	if !slot.Valid(slotID) {
		return time.Time{}, "", fmt.Errorf("unknown slot %q", c.Query("slot"))
	}

	return date, slotID, nil
}

// processCandidatesReq binds and validates the candidate pool filters.
func (h *handler) processCandidatesReq(c *gin.Context) (scheduler.CandidateFilters, error) {
	var req candidatesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return scheduler.CandidateFilters{}, err
	}
	return req.toFilters()
}

// processUpdateSelectionReq binds and validates a selection mutation.
func (h *handler) processUpdateSelectionReq(c *gin.Context) (updateSelectionReq, error) {
	var req updateSelectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCommitReq binds and validates the commit target.
func (h *handler) processCommitReq(c *gin.Context) (commitTarget, error) {
	var req commitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return commitTarget{}, err
	}

	date, err := h.clock.ParseDay(req.Date)
	if err != nil {
		return commitTarget{}, err
	}

	slotID := slot.ID(req.Slot)
	if !slot.Valid(slotID) {
		return commitTarget{}, fmt.Errorf("unknown slot %q", req.Slot)
	}

	return commitTarget{date: date, slotID: slotID}, nil
}

// --- Request DTOs ---

type candidatesReq struct {
	Search           string `form:"search"`
	Priority         string `form:"priority"`
	Venture          string `form:"venture"`
	IncludeScheduled bool   `form:"include_scheduled"`
}

func (r candidatesReq) toFilters() (scheduler.CandidateFilters, error) {
	filters := scheduler.CandidateFilters{
		Search:           r.Search,
		VentureID:        r.Venture,
		IncludeScheduled: r.IncludeScheduled,
	}
	if r.Priority != "" {
		p := model.Priority(r.Priority)
		switch p {
		case model.PriorityP0, model.PriorityP1, model.PriorityP2, model.PriorityP3:
			filters.Priority = &p
		default:
			return scheduler.CandidateFilters{}, fmt.Errorf("unknown priority %q", r.Priority)
		}
	}
	return filters, nil
}

type updateSelectionReq struct {
	Op      string   `json:"op" binding:"omitempty,oneof=set add remove toggle"`
	TaskIDs []string `json:"task_ids"`
}

func (r updateSelectionReq) validate() error {
	if r.Op != "set" && len(r.TaskIDs) == 0 {
		return fmt.Errorf("task_ids is required for op %q", r.Op)
	}
	return nil
}

// apply mutates the session selection. Default op is "set".
func (r updateSelectionReq) apply(sess *scheduler.Session) {
	switch r.Op {
	case "add":
		for _, id := range r.TaskIDs {
			sess.Select(id)
		}
	case "remove":
		for _, id := range r.TaskIDs {
			sess.Deselect(id)
		}
	case "toggle":
		for _, id := range r.TaskIDs {
			sess.Toggle(id)
		}
	default:
		sess.SetSelection(r.TaskIDs)
	}
}

type commitReq struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

type commitTarget struct {
	date   time.Time
	slotID slot.ID
}
