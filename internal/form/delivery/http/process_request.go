package http

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
)

// processExtractReq binds and validates the extraction request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateDraftReq binds and validates the field edit request body.
func (h *handler) processUpdateDraftReq(c *gin.Context) (updateDraftReq, error) {
	var req updateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPutCredentialReq binds and validates the credential request body.
func (h *handler) processPutCredentialReq(c *gin.Context) (putCredentialReq, error) {
	var req putCredentialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// storeCredential persists the API key under the credential key so the
// extraction use case picks it up on the next call.
func (h *handler) storeCredential(ctx context.Context, req putCredentialReq) error {
	raw, err := json.Marshal(extraction.CredentialConfig{APIKey: req.APIKey})
	if err != nil {
		return err
	}
	return h.st.Set(ctx, store.KeyCredential, raw)
}
