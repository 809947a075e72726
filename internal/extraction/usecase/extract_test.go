package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction/usecase"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store/memory"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gemini"
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

// fakeGemini spins up an httptest server answering every generate call
// with the given text and returns a client bound to it.
func fakeGemini(t *testing.T, responseText string, hits *int) usecase.LLM {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		json.NewEncoder(w).Encode(gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: responseText}}}},
			},
		})
	}))
	t.Cleanup(ts.Close)
	return gemini.NewClient(gemini.WithAPIURL(ts.URL))
}

func TestExtractEmptySelection(t *testing.T) {
	uc := usecase.New(mockLogger{}, fakeGemini(t, "{}", nil), memory.NewStore(), "key", "UTC", 0)

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "   "})
	if !errors.Is(err, extraction.ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
}

func TestExtractNoAPIKeyShortCircuits(t *testing.T) {
	hits := 0
	uc := usecase.New(mockLogger{}, fakeGemini(t, "{}", &hits), memory.NewStore(), "", "UTC", 0)

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "Lunch tomorrow 1pm"})
	if !errors.Is(err, extraction.ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
	if hits != 0 {
		t.Errorf("model called %d times despite missing credential", hits)
	}
}

func TestExtractCredentialFromStore(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	_ = st.Set(ctx, store.KeyCredential, []byte(`{"apiKey":"from-store"}`))

	hits := 0
	uc := usecase.New(mockLogger{}, fakeGemini(t, `{"eventName":"Standup","description":null,"date":null,"startTime":null,"endTime":null,"location":null,"virtualLink":null}`, &hits), st, "", "UTC", 0)

	out, err := uc.Extract(ctx, extraction.ExtractInput{Text: "daily standup"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if hits != 1 {
		t.Errorf("model hits = %d, want 1", hits)
	}
	if out.Result.EventName == nil || *out.Result.EventName != "Standup" {
		t.Errorf("eventName = %v", out.Result.EventName)
	}
}

func TestExtractIsolatesFencedJSON(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	responseText := "Sure! ```json\n{\"eventName\":\"Lunch with Sam\",\"description\":null,\"date\":\"2024-06-02\",\"startTime\":\"1pm\",\"endTime\":\"14:00:00\",\"location\":\"Cafe Luna\",\"virtualLink\":null}\n``` hope that helps"

	uc := usecase.New(mockLogger{}, fakeGemini(t, responseText, nil), st, "key", "UTC", 0)

	out, err := uc.Extract(ctx, extraction.ExtractInput{Text: "Lunch with Sam tomorrow 1pm to 2pm at Cafe Luna"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	r := out.Result
	if r.EventName == nil || *r.EventName != "Lunch with Sam" {
		t.Errorf("eventName = %v", r.EventName)
	}
	if r.Date == nil || *r.Date != "2024-06-02" {
		t.Errorf("date = %v", r.Date)
	}
	if r.StartTime == nil || *r.StartTime != "13:00" {
		t.Errorf("startTime = %v, want normalized 13:00", r.StartTime)
	}
	if r.EndTime == nil || *r.EndTime != "14:00" {
		t.Errorf("endTime = %v, want normalized 14:00", r.EndTime)
	}
	if r.Description != nil || r.VirtualLink != nil {
		t.Error("null fields must stay null")
	}

	// Side effect: result persisted under the extraction key.
	raw, ok, err := st.Get(ctx, store.KeyExtraction)
	if err != nil || !ok {
		t.Fatalf("extraction key not written: ok=%v err=%v", ok, err)
	}
	var persisted model.ExtractionResult
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted value not JSON: %v", err)
	}
	if persisted.StartTime == nil || *persisted.StartTime != "13:00" {
		t.Errorf("persisted startTime = %v, must be canonical", persisted.StartTime)
	}
}

func TestExtractNoMatchLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	allNull := `{"eventName":null,"description":null,"date":null,"startTime":null,"endTime":null,"location":null,"virtualLink":null}`

	uc := usecase.New(mockLogger{}, fakeGemini(t, allNull, nil), st, "key", "UTC", 0)

	_, err := uc.Extract(ctx, extraction.ExtractInput{Text: "the sky is blue"})
	if !errors.Is(err, extraction.ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	if _, ok, _ := st.Get(ctx, store.KeyExtraction); ok {
		t.Error("no-match must not write the extraction key")
	}
}

func TestExtractMalformedResponse(t *testing.T) {
	uc := usecase.New(mockLogger{}, fakeGemini(t, "I could not find any JSON to give you.", nil), memory.NewStore(), "key", "UTC", 0)

	_, err := uc.Extract(context.Background(), extraction.ExtractInput{Text: "Lunch tomorrow"})
	if !errors.Is(err, extraction.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestExtractCacheAvoidsSecondModelCall(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	hits := 0
	responseText := `{"eventName":"Lunch","description":null,"date":"2024-06-02","startTime":"13:00","endTime":"14:00","location":null,"virtualLink":null}`

	uc := usecase.New(mockLogger{}, fakeGemini(t, responseText, &hits), st, "key", "UTC", 8)

	if _, err := uc.Extract(ctx, extraction.ExtractInput{Text: "Lunch tomorrow 1pm"}); err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	_ = st.Remove(ctx, store.KeyExtraction)

	out, err := uc.Extract(ctx, extraction.ExtractInput{Text: "Lunch tomorrow 1pm"})
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}
	if hits != 1 {
		t.Errorf("model hits = %d, want 1 (second call served from cache)", hits)
	}
	if !out.Cached {
		t.Error("second call must report cache hit")
	}
	// The store write happens on every call, cached or not.
	if _, ok, _ := st.Get(ctx, store.KeyExtraction); !ok {
		t.Error("cached extraction must still be persisted")
	}
}
