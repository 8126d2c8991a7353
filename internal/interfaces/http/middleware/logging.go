// Package middleware provides gin middleware for the HTTP interface layer.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
)

// skipPaths are high-frequency probe paths excluded from request logging.
var skipPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
	"/metrics": {},
}

// RequestLogging logs method, path, status, and duration for every request.
// 5xx responses log at Error level, 4xx at Warn, everything else at Info.
func RequestLogging(logger logging.Logger) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		if _, skip := skipPaths[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Int("bytes", c.Writer.Size()),
			logging.String("client_ip", c.ClientIP()),
			logging.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
		}
		switch {
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}
	}
}
