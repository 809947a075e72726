package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	formHTTP "github.com/Dhanarooban1/websiteEventsToCalendar/internal/form/delivery/http"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/middleware"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimit)

	h := formHTTP.New(srv.l, srv.formController, srv.store)
	formHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Event form routes registered under /api/v1")

	return nil
}
