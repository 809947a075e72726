package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/calendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gcalendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
// Unknown errors become a generic 500 so internals never leak to clients.
func (h *handler) respondError(c *gin.Context, err error) {
	var incomplete *form.IncompleteDraftError
	if errors.As(err, &incomplete) {
		response.Error(c, err, map[string]interface{}{
			"missingFields": incomplete.Missing,
		})
		return
	}

	var httpErr *gcalendar.HTTPError
	if errors.As(err, &httpErr) {
		response.ErrorWithStatus(c, httpErr.Status, err, nil)
		return
	}

	switch {
	case errors.Is(err, form.ErrBusy):
		response.ErrorWithStatus(c, http.StatusConflict, err, nil)
	case errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrInvalidValue),
		errors.Is(err, extraction.ErrEmptySelection):
		response.Error(c, err, nil)
	case errors.Is(err, extraction.ErrNoAPIKey):
		response.ErrorWithStatus(c, http.StatusUnauthorized, err, nil)
	case errors.Is(err, extraction.ErrNoMatch):
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err, nil)
	case errors.Is(err, extraction.ErrMalformedResponse),
		errors.Is(err, gcalendar.ErrNetwork):
		response.ErrorWithStatus(c, http.StatusBadGateway, err, nil)
	case errors.Is(err, calendar.ErrAuth):
		response.ErrorWithStatus(c, http.StatusUnauthorized, err, nil)
	default:
		response.InternalError(c, err)
	}
}
