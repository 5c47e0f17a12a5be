// Package config loads usercli settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultDBFile is the database location relative to the directory holding the executable.
const DefaultDBFile = "data/users.sqlite"

// Config contains usercli configuration parameters.
type Config struct {
	DBPath  string `env:"DB_PATH"`
	Driver  string `env:"DRIVER" envDefault:"sqlite3"`
	PerPage int    `env:"PER_PAGE" envDefault:"5"`
	Log     Log    `envPrefix:"LOG_"`
	Observe Observe
}

// Log contains logging parameters.
type Log struct {
	Level   string `env:"LEVEL" envDefault:"warn"`
	Format  string `env:"FORMAT" envDefault:"text"`
	Queries bool   `env:"QUERIES" envDefault:"false"`
}

// Observe contains query observability parameters.
type Observe struct {
	SlowQuery time.Duration `env:"SLOW_QUERY" envDefault:"200ms"`
	Tracing   bool          `env:"TRACING" envDefault:"false"`
	Metrics   bool          `env:"METRICS" envDefault:"false"`
}

// Load reads configuration from USERCLI_* environment variables.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads configuration from the given environment map, or from the
// process environment when environ is nil.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := Config{}
	opts := env.Options{Prefix: "USERCLI_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PerPage < 1 {
		return fmt.Errorf("invalid config: USERCLI_PER_PAGE must be at least 1, got %d", c.PerPage)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: USERCLI_LOG_FORMAT must be 'text' or 'json', got %q", c.Log.Format)
	}
	return nil
}

// SlogLevel converts the configured level name to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("invalid config: USERCLI_LOG_LEVEL must be 'debug', 'info', 'warn' or 'error', got %q", l.Level)
	}
	return level, nil
}

// ResolveDBPath returns DBPath when set, otherwise DefaultDBFile next to the executable.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultDBFile), nil
}
