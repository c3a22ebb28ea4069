package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "EVENT_STORE_BACKEND", "EVENT_STORE_MAX_EVENTS", "SQLITE_PATH",
		"DATABASE_URL", "EVENTS_TABLE", "AWS_REGION", "DYNAMODB_ENDPOINT", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"CHROME_PATH", "RENDER_TIMEOUT", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET",
		"MINIO_USE_SSL", "MINIO_EXPIRE_HOURS", "INTERNAL_METRICS_KEY", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, BackendMemory, cfg.EventStore.Backend)
	assert.Equal(t, 1000, cfg.EventStore.MaxEvents)
	assert.Equal(t, 30*time.Second, cfg.GetRenderTimeout())
	assert.Equal(t, 24*time.Hour, cfg.GetArchiveURLExpiry())
	assert.False(t, cfg.IsArchiveEnabled())
	assert.Empty(t, cfg.Security.InternalMetricsKey)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
port: 9090
logging:
  level: debug
  format: console
event_store:
  backend: sqlite
  max_events: 50
  sqlite_path: /tmp/events.db
render:
  timeout: 5s
archive:
  endpoint: minio:9000
  use_ssl: true
security:
  internal_metrics_key: from-file
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("INTERNAL_METRICS_KEY", "from-env")
	t.Setenv("EVENT_STORE_MAX_EVENTS", "75")
	t.Setenv("MINIO_USE_SSL", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, BackendSQLite, cfg.EventStore.Backend)
	assert.Equal(t, "/tmp/events.db", cfg.EventStore.SQLitePath)
	assert.Equal(t, 75, cfg.EventStore.MaxEvents)
	assert.Equal(t, 5*time.Second, cfg.GetRenderTimeout())
	assert.True(t, cfg.IsArchiveEnabled())
	assert.False(t, cfg.Archive.UseSSL)
	assert.Equal(t, "from-env", cfg.Security.InternalMetricsKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("EVENT_STORE_BACKEND", "redis")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid event store backend")
	})

	t.Run("postgres without url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("EVENT_STORE_BACKEND", "Postgres")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad integer", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [1, 2"), 0o600))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestGetRenderTimeout_Fallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.Timeout = "soon"
	assert.Equal(t, 30*time.Second, cfg.GetRenderTimeout())
}

func TestLoad_PortOverride(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		want    int
		wantErr bool
	}{
		{name: "env overrides default", env: "7070", want: 7070},
		{name: "surrounding spaces", env: " 9000 ", want: 9000},
		{name: "not a number", env: "http", wantErr: true},
		{name: "out of range", env: "70000", wantErr: true},
		{name: "zero", env: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", tt.env)

			cfg, err := Load("")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Port)
		})
	}
}
