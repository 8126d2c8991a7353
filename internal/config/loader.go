package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "FINTAG"

// newViper builds a pre-configured Viper instance with the service's standard
// settings: YAML file type, FINTAG_ env prefix, automatic env binding, and a
// key replacer that maps "." to "_" so that nested keys like "server.port"
// resolve to "FINTAG_SERVER_PORT".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Registering every key makes AutomaticEnv visible to Unmarshal, so a
	// purely env-driven load sees FINTAG_* overrides.
	for _, key := range []string{
		"server.port",
		"server.mode",
		"server.read_timeout",
		"server.write_timeout",
		"server.max_body_size",
		"server.shutdown_timeout",
		"log.level",
		"log.format",
		"log.output_paths",
		"tagger.concepts_path",
		"tagger.batch_concurrency",
		"tagger.recognizer.enabled",
		"tagger.recognizer.endpoint",
		"tagger.recognizer.timeout",
	} {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges any FINTAG_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from FINTAG_* environment variables,
// with no config file required. This is the preferred loading strategy for
// containerised deployments.
//
// Environment variable naming convention:
//
//	FINTAG_<SECTION>_<FIELD>   e.g.  FINTAG_SERVER_PORT, FINTAG_LOG_LEVEL
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk. If the changed file
// fails to parse or validate, onChange is not called. Watch is non-blocking;
// viper manages the background goroutine.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read so subsequent change events reparse a known file. Callers
	// should call Load first for error reporting.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error. It
// is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
