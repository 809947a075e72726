package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extraction is rate limited because each call can hit the LLM upstream.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.GET("/draft", h.Draft)
		events.PATCH("/draft", h.UpdateDraft)
		events.POST("/submit", h.Submit)
		events.POST("/clear", h.Clear)
	}

	rg.PUT("/credentials", h.PutCredential)
}
