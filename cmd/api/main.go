package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dhanarooban1/websiteEventsToCalendar/config"
	calendarUC "github.com/Dhanarooban1/websiteEventsToCalendar/internal/calendar"
	extractionUC "github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction/usecase"
	formUC "github.com/Dhanarooban1/websiteEventsToCalendar/internal/form/usecase"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/httpserver"
	fileStore "github.com/Dhanarooban1/websiteEventsToCalendar/internal/store/file"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gauth"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gcalendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gemini"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Web Event Clipper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Persistent store
	st, err := fileStore.NewStore(logger, cfg.Store.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open store %s: %v", cfg.Store.Path, err)
		return
	}

	// 4. Extraction use case (Gemini)
	geminiClient := gemini.NewClient(gemini.WithModel(cfg.Gemini.Model))
	extractor := extractionUC.New(logger, geminiClient, st,
		cfg.Gemini.APIKey, cfg.Extraction.Timezone, cfg.Extraction.CacheSize)

	// 5. Calendar submission (Google OAuth, optional until authorized)
	tokens := gauth.NewProvider(gauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		TokenFile:    cfg.Google.TokenFile,
	})

	gcal, err := gcalendar.NewClient(ctx, tokens.TokenSource(ctx))
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize calendar client: %v", err)
		return
	}
	submitter := calendarUC.NewSubmitter(logger, tokens, gcal,
		cfg.Extraction.Timezone, cfg.Google.CalendarID)

	// 6. Form controller
	controller := formUC.New(logger, extractor, submitter, st)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RateLimit:      cfg.RateLimit,
		FormController: controller,
		Store:          st,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
