package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/calendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	pkgLog "github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

type implController struct {
	l         pkgLog.Logger
	extractor extraction.UseCase
	submitter calendar.Submitter
	st        store.Store

	mu    sync.Mutex
	phase form.Phase
	draft model.EventRecord
}

// New creates the form controller, loads any persisted draft and
// subscribes to extraction results. The subscription merges results
// into the draft whenever they land, regardless of phase, so a
// notification arriving after the triggering call returned is still
// applied.
func New(l pkgLog.Logger, extractor extraction.UseCase, submitter calendar.Submitter, st store.Store) *implController {
	c := &implController{
		l:         l,
		extractor: extractor,
		submitter: submitter,
		st:        st,
		phase:     form.PhaseIdle,
		draft:     model.DefaultRecord(),
	}

	c.loadDraft(context.Background())
	st.Watch(store.KeyExtraction, c.onExtraction)

	return c
}

// loadDraft restores the persisted draft, re-normalizing the date so
// older stored formats still round-trip. A corrupt draft is discarded.
func (c *implController) loadDraft(ctx context.Context) {
	raw, ok, err := c.st.Get(ctx, store.KeyDraft)
	if err != nil {
		c.l.Warnf(ctx, "loadDraft: store read failed, starting fresh: %v", err)
		return
	}
	if !ok {
		return
	}

	var draft model.EventRecord
	if err := json.Unmarshal(raw, &draft); err != nil {
		c.l.Warnf(ctx, "loadDraft: corrupt persisted draft discarded: %v", err)
		return
	}
	if draft.Date != "" {
		if d, dok := model.NormalizeDate(draft.Date); dok {
			draft.Date = d
		} else {
			draft.Date = ""
		}
	}
	if draft.Priority == "" {
		draft.Priority = model.PriorityMedium
	}
	if draft.Notification == "" {
		draft.Notification = model.DefaultNotification
	}
	if draft.Color == "" {
		draft.Color = model.DefaultColor
	}

	c.mu.Lock()
	c.draft = draft
	c.mu.Unlock()
	c.l.Infof(ctx, "loadDraft: restored persisted draft")
}
