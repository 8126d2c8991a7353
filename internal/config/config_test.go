package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  mode: debug
log:
  level: debug
tagger:
  batch_concurrency: 8
  concepts_path: /etc/fintag/concepts.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Tagger.BatchConcurrency)
	assert.Equal(t, "/etc/fintag/concepts.yaml", cfg.Tagger.ConceptsPath)

	// Unset fields pick up defaults.
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
	assert.Equal(t, 2*time.Second, cfg.Tagger.Recognizer.Timeout)
	assert.False(t, cfg.Tagger.Recognizer.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  mode: production
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.mode")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FINTAG_SERVER_PORT", "7070")
	t.Setenv("FINTAG_SERVER_MODE", "test")
	t.Setenv("FINTAG_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Tagger.BatchConcurrency)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.EqualValues(t, 4<<20, cfg.Server.MaxBodySize)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		ApplyDefaults(cfg)
		return cfg
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Server.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "server.port")

	cfg = valid()
	cfg.Server.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "server.port")

	cfg = valid()
	cfg.Server.Mode = "prod"
	assert.ErrorContains(t, cfg.Validate(), "server.mode")

	cfg = valid()
	cfg.Tagger.BatchConcurrency = 0
	assert.ErrorContains(t, cfg.Validate(), "batch_concurrency")

	cfg = valid()
	cfg.Tagger.Recognizer.Enabled = true
	cfg.Tagger.Recognizer.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "recognizer.endpoint")

	cfg = valid()
	cfg.Tagger.Recognizer.Enabled = true
	cfg.Tagger.Recognizer.Endpoint = "http://localhost:9000"
	cfg.Tagger.Recognizer.Timeout = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "recognizer.timeout")
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}
