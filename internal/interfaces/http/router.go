// Package http wires the gin route tree and HTTP server for the tagging
// service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/FinNote-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies required to
// construct the complete HTTP route tree.
type RouterConfig struct {
	TagHandler    *handlers.TagHandler
	HealthHandler *handlers.HealthHandler

	// MetricsHandler serves the Prometheus exposition endpoint. Optional.
	MetricsHandler http.Handler

	Logger logging.Logger

	// Mode is the gin mode: "debug", "release", or "test".
	Mode string
}

// NewRouter constructs the complete route tree: public probe endpoints, the
// metrics endpoint, and the /api/v1 tagging group.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger))
	}

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	if cfg.TagHandler != nil {
		v1 := r.Group("/api/v1")
		v1.POST("/tag", cfg.TagHandler.TagText)
		v1.POST("/notes", cfg.TagHandler.TagNote)
	}

	return r
}
