package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/internal/slot"
	"deepwork-scheduler/pkg/response"
)

// Slots godoc
// @Summary     List the slot catalog
// @Description Returns the fixed daily time slots with their capacities.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} slotsResp
// @Router      /api/v1/schedule/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	response.OK(c, newSlotsResp(slot.Catalog()))
}

// DayOverview godoc
// @Summary     Day overview
// @Description Returns the assignment view of every catalog slot for a date.
// @Tags        Schedule
// @Produce     json
// @Param       date path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} dayOverviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/day/{date} [GET]
func (h *handler) DayOverview(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.clock.ParseDay(c.Param("date"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	views, err := h.uc.DayOverview(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.DayOverview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDayOverviewResp(views))
}

// SlotView godoc
// @Summary     Slot assignment view
// @Description Returns scheduled tasks, calendar conflicts and usage for one (date, slot) pair.
// @Tags        Schedule
// @Produce     json
// @Param       date query string true "Date (YYYY-MM-DD)"
// @Param       slot query string true "Slot id"
// @Success     200 {object} slotViewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/slot [GET]
func (h *handler) SlotView(c *gin.Context) {
	ctx := c.Request.Context()

	date, slotID, err := h.processSlotQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.SlotView(ctx, date, slotID)
	if err != nil {
		h.l.Errorf(ctx, "uc.SlotView: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSlotViewResp(view))
}

// Candidates godoc
// @Summary     List scheduling candidates
// @Description Returns the filtered, ranked pool of tasks eligible for assignment.
// @Tags        Schedule
// @Produce     json
// @Param       search            query string false "Title substring (case-insensitive)"
// @Param       priority          query string false "Exact priority tier (P0..P3)"
// @Param       venture           query string false "Exact venture id"
// @Param       include_scheduled query bool   false "Keep already-scheduled tasks"
// @Success     200 {object} candidatesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/schedule/candidates [GET]
func (h *handler) Candidates(c *gin.Context) {
	ctx := c.Request.Context()

	filters, err := h.processCandidatesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	candidates, err := h.uc.Candidates(ctx, filters)
	if err != nil {
		h.l.Errorf(ctx, "uc.Candidates: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCandidatesResp(candidates))
}

// Ventures godoc
// @Summary     List ventures
// @Description Returns the venture directory used to decorate and filter candidates.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} venturesResp
// @Router      /api/v1/schedule/ventures [GET]
func (h *handler) Ventures(c *gin.Context) {
	ctx := c.Request.Context()

	ventures, err := h.uc.Ventures(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Ventures: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newVenturesResp(ventures))
}

// CreateSession godoc
// @Summary     Open a scheduling session
// @Description Creates an ephemeral session holding the selection being built.
// @Tags        Session
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/schedule/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	sess := h.sessions.Open()
	response.OK(c, newSessionResp(sess))
}

// GetSession godoc
// @Summary     Get a scheduling session
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session id"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, h.mapError(errSessionNotFound), nil)
		return
	}
	response.OK(c, newSessionResp(sess))
}

// UpdateSelection godoc
// @Summary     Mutate the session selection
// @Description Sets, adds, removes or toggles task ids in the selection set.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       id   path string             true "Session id"
// @Param       body body updateSelectionReq true "Selection mutation"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/sessions/{id}/selection [PUT]
func (h *handler) UpdateSelection(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, h.mapError(errSessionNotFound), nil)
		return
	}

	req, err := h.processUpdateSelectionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req.apply(sess)
	response.OK(c, newSessionResp(sess))
}

// Projection godoc
// @Summary     Project capacity for the current selection
// @Description Combines the slot's current usage with the session selection and flags overcommitment.
// @Tags        Session
// @Produce     json
// @Param       id   path  string true "Session id"
// @Param       date query string true "Date (YYYY-MM-DD)"
// @Param       slot query string true "Slot id"
// @Success     200 {object} projectionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedule/sessions/{id}/projection [GET]
func (h *handler) Projection(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, h.mapError(errSessionNotFound), nil)
		return
	}

	date, slotID, err := h.processSlotQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	projection, err := h.uc.Project(ctx, date, slotID, sess.Selection())
	if err != nil {
		h.l.Errorf(ctx, "uc.Project: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProjectionResp(projection))
}

// Commit godoc
// @Summary     Commit the session selection to a slot
// @Description Fans out one assignment update per selected task. Not atomic: on partial failure the per-task breakdown is returned and the selection is retained for retry. On full success the session is closed.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Session id"
// @Param       body body commitReq true "Target (date, slot)"
// @Success     200 {object} commitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Commit partially or fully failed"
// @Router      /api/v1/schedule/sessions/{id}/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.Error(c, h.mapError(errSessionNotFound), nil)
		return
	}

	req, err := h.processCommitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Commit(ctx, scheduler.CommitInput{
		Date:      req.date,
		SlotID:    req.slotID,
		Selection: sess.Selection(),
	})
	if err != nil {
		if errors.Is(err, scheduler.ErrCommitFailed) {
			// Selection retained so the user can retry.
			h.l.Errorf(ctx, "uc.Commit: %v", err)
			response.Error(c, h.mapError(err), commitFailureData(output))
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	// Full success: the session's purpose is fulfilled, discard it and tell
	// the caller to refresh task and day-aggregate views.
	sess.Clear()
	h.sessions.Close(sess.ID)
	response.OK(c, newCommitResp(output))
}

// CloseSession godoc
// @Summary     Discard a scheduling session
// @Description Drops the selection and filter state with no external effect.
// @Tags        Session
// @Produce     json
// @Param       id path string true "Session id"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/schedule/sessions/{id} [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	h.sessions.Close(c.Param("id"))
	response.OK(c, nil)
}
