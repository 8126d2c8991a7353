// Package config defines all configuration structures for the
// FinNote-Intelligence service. No I/O or parsing logic lives here, only
// plain data types and validation.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/internal/intelligence/notetag"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Top-level config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration for the service.
type Config struct {
	Server ServerConfig      `mapstructure:"server"`
	Log    logging.LogConfig `mapstructure:"log"`
	Tagger notetag.Config    `mapstructure:"tagger"`
}

// Validate checks the configuration for inconsistencies that would prevent
// the service from starting.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be one of debug|release|test, got %q", c.Server.Mode)
	}
	if c.Tagger.BatchConcurrency < 1 {
		return fmt.Errorf("tagger.batch_concurrency must be >= 1, got %d", c.Tagger.BatchConcurrency)
	}
	if c.Tagger.Recognizer.Enabled {
		if c.Tagger.Recognizer.Endpoint == "" {
			return fmt.Errorf("tagger.recognizer.endpoint is required when the recognizer is enabled")
		}
		if c.Tagger.Recognizer.Timeout <= 0 {
			return fmt.Errorf("tagger.recognizer.timeout must be positive, got %s", c.Tagger.Recognizer.Timeout)
		}
	}
	return nil
}
