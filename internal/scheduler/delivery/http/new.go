package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"deepwork-scheduler/internal/scheduler"
	"deepwork-scheduler/pkg/dates"
	"deepwork-scheduler/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Slots(c *gin.Context)
	DayOverview(c *gin.Context)
	SlotView(c *gin.Context)
	Candidates(c *gin.Context)
	Ventures(c *gin.Context)
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	UpdateSelection(c *gin.Context)
	Projection(c *gin.Context)
	Commit(c *gin.Context)
	CloseSession(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       scheduler.UseCase
	sessions *sessionStore
	clock    *dates.Clock
}

// Config bundles the delivery layer's tunables.
type Config struct {
	SessionCapacity int
	SessionTTL      time.Duration
}

// New creates a new HTTP handler for the scheduler domain.
func New(l log.Logger, uc scheduler.UseCase, clock *dates.Clock, cfg Config) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: newSessionStore(cfg.SessionCapacity, cfg.SessionTTL),
		clock:    clock,
	}
}
