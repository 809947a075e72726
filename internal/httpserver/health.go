package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Web Event Clipper API"
	HealthVersion = "1.0.0"
	ServiceName   = "websiteEventsToCalendar"
)

// healthCheck handles health check requests.
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck returns ready once the server is accepting traffic.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
