package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/response"
)

// Extract godoc
// @Summary     Extract event details from selected text
// @Description Sends the selected text to the LLM, merges the result into the draft and returns it.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Selected page text"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - another operation in flight"
// @Failure     422 {object} response.Resp "No event found in the text"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.fc.Extract(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "form.Extract: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Draft godoc
// @Summary     Get the current draft
// @Description Returns the persisted draft form and the controller phase.
// @Tags        Events
// @Produce     json
// @Success     200 {object} draftResp
// @Router      /api/v1/events/draft [GET]
func (h *handler) Draft(c *gin.Context) {
	response.OK(c, h.newDraftResp())
}

// UpdateDraft godoc
// @Summary     Edit a single draft field
// @Description Validates and applies one field edit, then persists the draft.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body updateDraftReq true "Field name and new value"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/events/draft [PATCH]
func (h *handler) UpdateDraft(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateDraftReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.fc.SetField(ctx, req.Field, req.Value); err != nil {
		h.l.Errorf(ctx, "form.SetField %q: %v", req.Field, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDraftResp())
}

// Submit godoc
// @Summary     Submit the draft to the calendar
// @Description Creates the calendar event, then clears the draft and extraction state.
// @Tags        Events
// @Produce     json
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Draft incomplete"
// @Failure     401 {object} response.Resp "Calendar authorization failed"
// @Failure     409 {object} response.Resp "Conflict - another operation in flight"
// @Router      /api/v1/events/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.fc.Submit(ctx)
	if err != nil {
		h.l.Errorf(ctx, "form.Submit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Clear godoc
// @Summary     Discard the draft
// @Description Resets the form to defaults and removes the persisted draft.
// @Tags        Events
// @Produce     json
// @Success     200 {object} draftResp
// @Router      /api/v1/events/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.fc.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "form.Clear: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDraftResp())
}

// PutCredential godoc
// @Summary     Store the LLM API key
// @Description Persists the user-supplied API key used for extraction calls.
// @Tags        Credentials
// @Accept      json
// @Produce     json
// @Param       body body putCredentialReq true "API key"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/credentials [PUT]
func (h *handler) PutCredential(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPutCredentialReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.storeCredential(ctx, req); err != nil {
		h.l.Errorf(ctx, "store credential: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
