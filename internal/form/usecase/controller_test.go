package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/calendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form/usecase"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store/memory"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func strPtr(s string) *string { return &s }

// mockExtractor mimics the real usecase's side effect: on success it
// writes the result to the store before returning.
type mockExtractor struct {
	st      store.Store
	result  model.ExtractionResult
	err     error
	started chan struct{} // closed on entry when non-nil
	release chan struct{} // blocks return when non-nil
}

func (m *mockExtractor) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	if m.err != nil {
		return extraction.ExtractOutput{}, m.err
	}
	raw, _ := json.Marshal(m.result)
	if err := m.st.Set(ctx, store.KeyExtraction, raw); err != nil {
		return extraction.ExtractOutput{}, err
	}
	return extraction.ExtractOutput{Result: m.result}, nil
}

type mockSubmitter struct {
	err  error
	hits int
}

func (m *mockSubmitter) Submit(ctx context.Context, record model.EventRecord) (calendar.SubmitOutput, error) {
	m.hits++
	if m.err != nil {
		return calendar.SubmitOutput{}, m.err
	}
	return calendar.SubmitOutput{EventID: "evt-1", HtmlLink: "https://cal/evt-1"}, nil
}

func lunchResult() model.ExtractionResult {
	return model.ExtractionResult{
		EventName: strPtr("Lunch with Sam"),
		Date:      strPtr("2024-06-02"),
		StartTime: strPtr("13:00"),
		EndTime:   strPtr("14:00"),
		Location:  strPtr("Cafe Luna"),
	}
}

func TestExtractMergesIntoDraft(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	c := usecase.New(mockLogger{}, &mockExtractor{st: st, result: lunchResult()}, &mockSubmitter{}, st)

	out, err := c.Extract(ctx, "Lunch with Sam tomorrow 1pm to 2pm at Cafe Luna")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	d := out.Draft
	if d.EventName != "Lunch with Sam" || d.Date != "2024-06-02" ||
		d.StartTime != "13:00" || d.EndTime != "14:00" || d.Location != "Cafe Luna" {
		t.Errorf("merged draft = %+v", d)
	}
	// Fields the extraction was null for keep their defaults.
	if d.Priority != model.PriorityMedium || d.Notification != "30" || d.Color != model.DefaultColor {
		t.Errorf("defaults clobbered: %+v", d)
	}
	if c.Phase() != form.PhaseIdle {
		t.Errorf("phase = %v after completion, want idle", c.Phase())
	}
}

func TestMergePreservesConcurrentUserEdits(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	result := lunchResult()
	result.Description = nil // extraction knows nothing about the description
	c := usecase.New(mockLogger{}, &mockExtractor{st: st, result: result}, &mockSubmitter{}, st)

	if err := c.SetField(ctx, "description", "bring the contract"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if _, err := c.Extract(ctx, "Lunch with Sam tomorrow 1pm to 2pm at Cafe Luna"); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	d := c.Draft()
	if d.Description != "bring the contract" {
		t.Errorf("user edit lost: description = %q", d.Description)
	}
	if d.EventName != "Lunch with Sam" {
		t.Errorf("non-null extraction field must override: %q", d.EventName)
	}
}

func TestExtractBusyGuard(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	ext := &mockExtractor{
		st:      st,
		result:  lunchResult(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := usecase.New(mockLogger{}, ext, &mockSubmitter{}, st)

	done := make(chan error, 1)
	go func() {
		_, err := c.Extract(ctx, "first")
		done <- err
	}()

	<-ext.started
	if _, err := c.Extract(ctx, "second"); !errors.Is(err, form.ErrBusy) {
		t.Errorf("re-entrant Extract err = %v, want ErrBusy", err)
	}
	if _, err := c.Submit(ctx); !errors.Is(err, form.ErrBusy) {
		t.Errorf("Submit during extraction err = %v, want ErrBusy", err)
	}

	close(ext.release)
	if err := <-done; err != nil {
		t.Fatalf("first Extract: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if c.Phase() != form.PhaseIdle {
		t.Errorf("phase = %v, want idle", c.Phase())
	}
}

func TestExtractNoMatchLeavesDraftAlone(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	ext := &mockExtractor{st: st, err: extraction.ErrNoMatch}
	c := usecase.New(mockLogger{}, ext, &mockSubmitter{}, st)

	_ = c.SetField(ctx, "eventName", "Keep me")

	_, err := c.Extract(ctx, "the sky is blue")
	if !errors.Is(err, extraction.ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	if c.Draft().EventName != "Keep me" {
		t.Error("no-match must not alter the draft")
	}
	if c.Phase() != form.PhaseIdle {
		t.Error("phase must clear after no-match")
	}
}

func TestExtractFailureClearsPhase(t *testing.T) {
	st := memory.NewStore()
	ext := &mockExtractor{st: st, err: errors.New("LLM exploded")}
	c := usecase.New(mockLogger{}, ext, &mockSubmitter{}, st)

	if _, err := c.Extract(context.Background(), "text"); err == nil {
		t.Fatal("expected error")
	}
	if c.Phase() != form.PhaseIdle {
		t.Errorf("phase stuck at %v after failure", c.Phase())
	}
}

func TestLateExtractionNotificationStillMerges(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	c := usecase.New(mockLogger{}, &mockExtractor{st: st}, &mockSubmitter{}, st)

	// A result committed outside any controller call, e.g. landing
	// after the triggering request already returned.
	raw, _ := json.Marshal(lunchResult())
	if err := st.Set(ctx, store.KeyExtraction, raw); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := c.Draft().EventName; got != "Lunch with Sam" {
		t.Errorf("late notification not merged: eventName = %q", got)
	}
}

func TestSubmitIncompleteDraft(t *testing.T) {
	st := memory.NewStore()
	sub := &mockSubmitter{}
	c := usecase.New(mockLogger{}, &mockExtractor{st: st}, sub, st)

	_, err := c.Submit(context.Background())
	var incomplete *form.IncompleteDraftError
	if !errors.As(err, &incomplete) {
		t.Fatalf("err = %v, want IncompleteDraftError", err)
	}
	if len(incomplete.Missing) != 4 {
		t.Errorf("missing = %v, want all four required fields", incomplete.Missing)
	}
	if sub.hits != 0 {
		t.Error("incomplete draft must not reach the submitter")
	}
	if c.Phase() != form.PhaseIdle {
		t.Error("phase must clear after validation failure")
	}
}

func TestSubmitSuccessResetsEverything(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	c := usecase.New(mockLogger{}, &mockExtractor{st: st, result: lunchResult()}, &mockSubmitter{}, st)

	if _, err := c.Extract(ctx, "Lunch with Sam tomorrow 1pm to 2pm at Cafe Luna"); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	out, err := c.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.EventID != "evt-1" {
		t.Errorf("event id = %q", out.EventID)
	}

	defaults := model.DefaultRecord()
	d := c.Draft()
	if d.EventName != "" || d.Date != "" || d.Priority != defaults.Priority || d.Color != defaults.Color {
		t.Errorf("draft not reset to defaults: %+v", d)
	}
	if _, ok, _ := st.Get(ctx, store.KeyDraft); ok {
		t.Error("draft key must be cleared after submission")
	}
	if _, ok, _ := st.Get(ctx, store.KeyExtraction); ok {
		t.Error("extraction key must be cleared after submission")
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	sub := &mockSubmitter{err: errors.New("upstream 500")}
	c := usecase.New(mockLogger{}, &mockExtractor{st: st, result: lunchResult()}, sub, st)

	if _, err := c.Extract(ctx, "Lunch with Sam tomorrow 1pm to 2pm at Cafe Luna"); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if _, err := c.Submit(ctx); err == nil {
		t.Fatal("expected submit failure")
	}
	if c.Draft().EventName != "Lunch with Sam" {
		t.Error("draft must survive a failed submission")
	}
	if c.Phase() != form.PhaseIdle {
		t.Error("phase must clear after failed submission")
	}
}

func TestSetFieldValidation(t *testing.T) {
	st := memory.NewStore()
	c := usecase.New(mockLogger{}, &mockExtractor{st: st}, &mockSubmitter{}, st)
	ctx := context.Background()

	cases := []struct {
		name    string
		field   string
		value   string
		wantErr error
	}{
		{"valid date normalized", "date", "June 2, 2024", nil},
		{"invalid date", "date", "whenever", form.ErrInvalidValue},
		{"valid time normalized", "startTime", "1pm", nil},
		{"invalid time", "endTime", "late", form.ErrInvalidValue},
		{"valid priority", "priority", "high", nil},
		{"invalid priority", "priority", "urgent", form.ErrInvalidValue},
		{"valid notification", "notification", "1440", nil},
		{"invalid notification", "notification", "45", form.ErrInvalidValue},
		{"unknown field", "summary", "x", form.ErrUnknownField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.SetField(ctx, tc.field, tc.value)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("SetField: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}

	d := c.Draft()
	if d.Date != "2024-06-02" || d.StartTime != "13:00" {
		t.Errorf("edits not normalized: date=%q start=%q", d.Date, d.StartTime)
	}
}

func TestDraftPersistsAcrossControllers(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	c := usecase.New(mockLogger{}, &mockExtractor{st: st}, &mockSubmitter{}, st)

	_ = c.SetField(ctx, "eventName", "Planning")
	_ = c.SetField(ctx, "date", "2024-06-02")

	reloaded := usecase.New(mockLogger{}, &mockExtractor{st: st}, &mockSubmitter{}, st)
	d := reloaded.Draft()
	if d.EventName != "Planning" || d.Date != "2024-06-02" {
		t.Errorf("restored draft = %+v", d)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	c := usecase.New(mockLogger{}, &mockExtractor{st: st}, &mockSubmitter{}, st)

	_ = c.SetField(ctx, "eventName", "Scratch")
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if c.Draft().EventName != "" {
		t.Error("draft not reset by Clear")
	}
	if _, ok, _ := st.Get(ctx, store.KeyDraft); ok {
		t.Error("draft key not removed by Clear")
	}
}
