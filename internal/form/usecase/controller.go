package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
)

// Extract runs the extraction pipeline for the selected text. The
// merge itself happens in the store watcher, so results landing after
// this call returns are applied the same way.
func (c *implController) Extract(ctx context.Context, text string) (form.ExtractOutput, error) {
	if err := c.enterPhase(form.PhaseExtracting); err != nil {
		return form.ExtractOutput{}, err
	}
	// The in-flight flag must clear on every exit path; a stuck flag
	// permanently disables the trigger.
	defer c.exitPhase()

	out, err := c.extractor.Extract(ctx, extraction.ExtractInput{Text: text})
	if err != nil {
		return form.ExtractOutput{}, err
	}

	return form.ExtractOutput{Result: out.Result, Draft: c.Draft()}, nil
}

// Submit sends the completed draft to the calendar API.
func (c *implController) Submit(ctx context.Context) (form.SubmitOutput, error) {
	if err := c.enterPhase(form.PhaseSubmitting); err != nil {
		return form.SubmitOutput{}, err
	}
	defer c.exitPhase()

	draft := c.Draft()
	if missing := draft.MissingFields(); len(missing) > 0 {
		return form.SubmitOutput{}, &form.IncompleteDraftError{Missing: missing}
	}

	created, err := c.submitter.Submit(ctx, draft)
	if err != nil {
		// The draft stays untouched so the user can retry.
		return form.SubmitOutput{}, err
	}

	c.mu.Lock()
	c.draft = model.DefaultRecord()
	c.mu.Unlock()

	// Two keys, one critical section in the store; see Remove's
	// contract. No concurrent reader depends on the window anyway
	// since submission holds the only non-Idle phase.
	if err := c.st.Remove(ctx, store.KeyDraft, store.KeyExtraction); err != nil {
		c.l.Warnf(ctx, "Submit: event %s created but store clear failed: %v", created.EventID, err)
	}

	return form.SubmitOutput{EventID: created.EventID, HtmlLink: created.HtmlLink}, nil
}

// SetField applies a single user edit. Edits are allowed in any phase;
// only Extract/Submit are mutually exclusive.
func (c *implController) SetField(ctx context.Context, name, value string) error {
	c.mu.Lock()
	err := applyField(&c.draft, name, value)
	draft := c.draft
	c.mu.Unlock()
	if err != nil {
		return err
	}

	return c.persistDraft(ctx, draft)
}

// Clear resets the draft and wipes both store keys.
func (c *implController) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.draft = model.DefaultRecord()
	c.mu.Unlock()

	return c.st.Remove(ctx, store.KeyDraft, store.KeyExtraction)
}

// Draft returns a snapshot of the current draft.
func (c *implController) Draft() model.EventRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft := c.draft
	draft.Tags = slices.Clone(c.draft.Tags)
	return draft
}

// Phase returns the controller's current phase.
func (c *implController) Phase() form.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// onExtraction merges a freshly committed extraction result into the
// draft with field-wise override: non-null fields win, nulls leave
// concurrent user edits alone.
func (c *implController) onExtraction(raw []byte) {
	ctx := context.Background()

	var result model.ExtractionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.l.Errorf(ctx, "onExtraction: malformed extraction value ignored: %v", err)
		return
	}
	if result.IsEmpty() {
		// All-null results never reach the store; guard anyway.
		return
	}

	c.mu.Lock()
	c.draft = model.Merge(c.draft, result)
	draft := c.draft
	c.mu.Unlock()

	if err := c.persistDraft(ctx, draft); err != nil {
		c.l.Errorf(ctx, "onExtraction: draft persist failed: %v", err)
	}
}

func (c *implController) enterPhase(next form.Phase) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != form.PhaseIdle {
		return form.ErrBusy
	}
	c.phase = next
	return nil
}

func (c *implController) exitPhase() {
	c.mu.Lock()
	c.phase = form.PhaseIdle
	c.mu.Unlock()
}

func (c *implController) persistDraft(ctx context.Context, draft model.EventRecord) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := c.st.Set(ctx, store.KeyDraft, raw); err != nil {
		return fmt.Errorf("failed to persist draft: %w", err)
	}
	return nil
}

// applyField validates and writes one field. Date and time edits are
// normalized on the way in so the draft never holds a raw value.
func applyField(draft *model.EventRecord, name, value string) error {
	switch name {
	case "eventName":
		draft.EventName = value
	case "description":
		draft.Description = value
	case "date":
		if value == "" {
			draft.Date = ""
			return nil
		}
		d, ok := model.NormalizeDate(value)
		if !ok {
			return fmt.Errorf("%w: date %q", form.ErrInvalidValue, value)
		}
		draft.Date = d
	case "startTime", "endTime":
		if value == "" {
			if name == "startTime" {
				draft.StartTime = ""
			} else {
				draft.EndTime = ""
			}
			return nil
		}
		t, ok := model.NormalizeTime(value)
		if !ok {
			return fmt.Errorf("%w: time %q", form.ErrInvalidValue, value)
		}
		if name == "startTime" {
			draft.StartTime = t
		} else {
			draft.EndTime = t
		}
	case "location":
		draft.Location = value
	case "virtualLink":
		draft.VirtualLink = value
	case "tags":
		draft.Tags = splitTags(value)
	case "priority":
		switch model.Priority(value) {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
			draft.Priority = model.Priority(value)
		default:
			return fmt.Errorf("%w: priority %q", form.ErrInvalidValue, value)
		}
	case "notification":
		if !slices.Contains(model.NotificationChoices, value) {
			return fmt.Errorf("%w: notification %q", form.ErrInvalidValue, value)
		}
		draft.Notification = value
	case "color":
		draft.Color = value
	default:
		return fmt.Errorf("%w: %q", form.ErrUnknownField, name)
	}
	return nil
}

func splitTags(value string) []string {
	var tags []string
	for _, t := range strings.Split(value, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}
