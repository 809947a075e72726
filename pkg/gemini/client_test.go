package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("api key = %q, want test-key", got)
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected request shape: %+v", req)
		}

		json.NewEncoder(w).Encode(gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: `{"eventName":"Lunch"}`}}}},
			},
		})
	}))
	defer ts.Close()

	client := gemini.NewClient(gemini.WithAPIURL(ts.URL))
	resp, err := client.GenerateContent(context.Background(), "test-key", gemini.GenerateRequest{
		Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "prompt"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text() != `{"eventName":"Lunch"}` {
		t.Errorf("Text() = %q", resp.Text())
	}
}

func TestGenerateContentUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := gemini.NewClient(gemini.WithAPIURL(ts.URL))
	_, err := client.GenerateContent(context.Background(), "k", gemini.GenerateRequest{})
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry upstream status: %v", err)
	}
}

func TestResponseTextEmpty(t *testing.T) {
	var resp gemini.GenerateResponse
	if resp.Text() != "" {
		t.Error("empty response must yield empty text")
	}
}
