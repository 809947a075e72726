package usecase

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gemini"
	pkgLog "github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

// LLM is the subset of the Gemini client the usecase needs.
type LLM interface {
	GenerateContent(ctx context.Context, apiKey string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	Model() string
}

const defaultCacheSize = 128

type implUseCase struct {
	l        pkgLog.Logger
	llm      LLM
	st       store.Store
	apiKey   string // config fallback; the store's credential key wins
	timezone string
	cache    *lru.Cache[string, model.ExtractionResult]
	now      func() time.Time
}

// New creates a new extraction UseCase instance. apiKey is the
// config-supplied fallback credential; the persisted credential-config
// store key takes precedence.
func New(l pkgLog.Logger, llm LLM, st store.Store, apiKey, timezone string, cacheSize int) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	// Only errors on non-positive size, which is guarded above.
	cache, _ := lru.New[string, model.ExtractionResult](cacheSize)

	return &implUseCase{
		l:        l,
		llm:      llm,
		st:       st,
		apiKey:   apiKey,
		timezone: timezone,
		cache:    cache,
		now:      time.Now,
	}
}
