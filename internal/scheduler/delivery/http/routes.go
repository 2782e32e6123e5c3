package http

import (
	"github.com/gin-gonic/gin"

	"deepwork-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// The whole schedule group sits behind the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	schedule := rg.Group("/schedule", mw.RateLimit())
	{
		schedule.GET("/slots", h.Slots)
		schedule.GET("/day/:date", h.DayOverview)
		schedule.GET("/slot", h.SlotView)
		schedule.GET("/candidates", h.Candidates)
		schedule.GET("/ventures", h.Ventures)

		sessions := schedule.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("/:id", h.GetSession)
			sessions.PUT("/:id/selection", h.UpdateSelection)
			sessions.GET("/:id/projection", h.Projection)
			sessions.POST("/:id/commit", h.Commit)
			sessions.DELETE("/:id", h.CloseSession)
		}
	}
}
