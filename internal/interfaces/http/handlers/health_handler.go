package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FinNote-Intelligence/internal/application/tagging"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	service tagging.Service
	version string
}

// NewHealthHandler creates a HealthHandler. The service may be nil during
// early startup; probes then report only process liveness.
func NewHealthHandler(service tagging.Service, version string) *HealthHandler {
	return &HealthHandler{service: service, version: version}
}

// Liveness responds 200 whenever the process is able to serve requests.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Readiness responds 200 once the tagging pipeline is constructed, and
// reports which extraction mode it is running in.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"mode":    string(h.service.Mode()),
	})
}
