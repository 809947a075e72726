package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gemini"
)

// Extract sends the selected text to Gemini, parses the constrained
// JSON response and persists the result under the extraction key.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptySelection
	}

	apiKey, err := uc.resolveAPIKey(ctx)
	if err != nil {
		return extraction.ExtractOutput{}, err
	}

	if cached, ok := uc.cache.Get(text); ok {
		uc.l.Infof(ctx, "Extract: cache hit for %d-byte selection", len(text))
		if err := uc.persistResult(ctx, cached); err != nil {
			return extraction.ExtractOutput{}, err
		}
		return extraction.ExtractOutput{Result: cached, Cached: true}, nil
	}

	result, err := uc.callModel(ctx, apiKey, text)
	if err != nil {
		return extraction.ExtractOutput{}, err
	}

	if result.IsEmpty() {
		uc.l.Infof(ctx, "Extract: no event details in %d-byte selection", len(text))
		return extraction.ExtractOutput{}, extraction.ErrNoMatch
	}

	normalized := normalizeResult(result)
	if err := uc.persistResult(ctx, normalized); err != nil {
		return extraction.ExtractOutput{}, err
	}
	uc.cache.Add(text, normalized)

	return extraction.ExtractOutput{Result: normalized}, nil
}

// resolveAPIKey prefers the user-persisted credential over the config
// fallback. Absence of both is a first-class condition, reported
// before the model is ever called.
func (uc *implUseCase) resolveAPIKey(ctx context.Context) (string, error) {
	raw, ok, err := uc.st.Get(ctx, store.KeyCredential)
	if err != nil {
		return "", fmt.Errorf("failed to read credential config: %w", err)
	}
	if ok {
		var cred extraction.CredentialConfig
		if err := json.Unmarshal(raw, &cred); err == nil && cred.APIKey != "" {
			return cred.APIKey, nil
		}
	}
	if uc.apiKey != "" {
		return uc.apiKey, nil
	}
	return "", extraction.ErrNoAPIKey
}

func (uc *implUseCase) callModel(ctx context.Context, apiKey, text string) (model.ExtractionResult, error) {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		loc = time.UTC
	}
	today := uc.now().In(loc).Format("2006-01-02")
	prompt := gemini.BuildEventExtractionPrompt(text, today)

	resp, err := uc.llm.GenerateContent(ctx, apiKey, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return model.ExtractionResult{}, fmt.Errorf("LLM request failed: %w", err)
	}

	responseText := resp.Text()
	uc.l.Debugf(ctx, "Extract: raw model response: %s", responseText)

	jsonObject, ok := isolateJSONObject(responseText)
	if !ok {
		uc.l.Errorf(ctx, "Extract: no JSON object in model response: %q", responseText)
		return model.ExtractionResult{}, extraction.ErrMalformedResponse
	}

	var result model.ExtractionResult
	if err := json.Unmarshal([]byte(jsonObject), &result); err != nil {
		uc.l.Errorf(ctx, "Extract: model JSON rejected: %v raw=%q", err, jsonObject)
		return model.ExtractionResult{}, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
	}

	return collapseEmpty(result), nil
}

func (uc *implUseCase) persistResult(ctx context.Context, result model.ExtractionResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal extraction result: %w", err)
	}
	if err := uc.st.Set(ctx, store.KeyExtraction, raw); err != nil {
		return fmt.Errorf("failed to persist extraction result: %w", err)
	}
	return nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// isolateJSONObject returns the first balanced {...} substring of the
// model output, tolerating markdown code fences and surrounding prose.
func isolateJSONObject(text string) (string, bool) {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		text = m[1]
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// collapseEmpty treats empty and literal "null" strings as absent, so
// downstream merge semantics only ever see value-or-nil.
func collapseEmpty(r model.ExtractionResult) model.ExtractionResult {
	clean := func(p *string) *string {
		if p == nil {
			return nil
		}
		s := strings.TrimSpace(*p)
		if s == "" || strings.EqualFold(s, "null") {
			return nil
		}
		return &s
	}

	return model.ExtractionResult{
		EventName:   clean(r.EventName),
		Description: clean(r.Description),
		Date:        clean(r.Date),
		StartTime:   clean(r.StartTime),
		EndTime:     clean(r.EndTime),
		Location:    clean(r.Location),
		VirtualLink: clean(r.VirtualLink),
	}
}

// normalizeResult canonicalizes date and time fields; values that
// cannot be normalized are dropped to null rather than stored raw.
func normalizeResult(r model.ExtractionResult) model.ExtractionResult {
	out := r
	if r.Date != nil {
		if d, ok := model.NormalizeDate(*r.Date); ok {
			out.Date = &d
		} else {
			out.Date = nil
		}
	}
	if r.StartTime != nil {
		if t, ok := model.NormalizeTime(*r.StartTime); ok {
			out.StartTime = &t
		} else {
			out.StartTime = nil
		}
	}
	if r.EndTime != nil {
		if t, ok := model.NormalizeTime(*r.EndTime); ok {
			out.EndTime = &t
		} else {
			out.EndTime = nil
		}
	}
	return out
}
