package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

// Handler is the public interface for the form HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Draft(c *gin.Context)
	UpdateDraft(c *gin.Context)
	Submit(c *gin.Context)
	Clear(c *gin.Context)
	PutCredential(c *gin.Context)
}

type handler struct {
	l  log.Logger
	fc form.Controller
	st store.Store
}

// New creates a new HTTP handler for the event form domain.
func New(l log.Logger, fc form.Controller, st store.Store) *handler {
	return &handler{
		l:  l,
		fc: fc,
		st: st,
	}
}
