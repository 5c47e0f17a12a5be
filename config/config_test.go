package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "sqlite3", cfg.Driver)
	assert.Equal(t, 5, cfg.PerPage)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.Queries)
	assert.Equal(t, 200*time.Millisecond, cfg.Observe.SlowQuery)
	assert.False(t, cfg.Observe.Tracing)
	assert.False(t, cfg.Observe.Metrics)
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"USERCLI_DB_PATH":     "/tmp/users.sqlite",
		"USERCLI_DRIVER":      "sqlite",
		"USERCLI_PER_PAGE":    "10",
		"USERCLI_LOG_LEVEL":   "debug",
		"USERCLI_LOG_FORMAT":  "json",
		"USERCLI_LOG_QUERIES": "true",
		"USERCLI_SLOW_QUERY":  "1s",
		"USERCLI_TRACING":     "true",
		"USERCLI_METRICS":     "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/users.sqlite", cfg.DBPath)
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Queries)
	assert.Equal(t, time.Second, cfg.Observe.SlowQuery)
	assert.True(t, cfg.Observe.Tracing)
	assert.True(t, cfg.Observe.Metrics)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wantErr string
	}{
		{name: "per page zero", environ: map[string]string{"USERCLI_PER_PAGE": "0"}, wantErr: "USERCLI_PER_PAGE"},
		{name: "per page not a number", environ: map[string]string{"USERCLI_PER_PAGE": "many"}, wantErr: "failed to parse config"},
		{name: "log level", environ: map[string]string{"USERCLI_LOG_LEVEL": "loud"}, wantErr: "USERCLI_LOG_LEVEL"},
		{name: "log format", environ: map[string]string{"USERCLI_LOG_FORMAT": "xml"}, wantErr: "USERCLI_LOG_FORMAT"},
		{name: "slow query", environ: map[string]string{"USERCLI_SLOW_QUERY": "soon"}, wantErr: "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.environ)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadReadsProcessEnvironment(t *testing.T) {
	t.Setenv("USERCLI_PER_PAGE", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.PerPage)
}

func TestResolveDBPath(t *testing.T) {
	t.Run("Explicit path", func(t *testing.T) {
		cfg := &Config{DBPath: "custom.sqlite"}
		path, err := cfg.ResolveDBPath()
		require.NoError(t, err)
		assert.Equal(t, "custom.sqlite", path)
	})

	t.Run("Next to the executable", func(t *testing.T) {
		cfg := &Config{}
		path, err := cfg.ResolveDBPath()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))
		assert.Equal(t, "users.sqlite", filepath.Base(path))
		assert.Equal(t, "data", filepath.Base(filepath.Dir(path)))
	})
}
