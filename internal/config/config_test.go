package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

func validConfig() Config {
	return Config{
		Redis: RedisConfig{
			Addrs:    []string{"localhost:6379"},
			PoolSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Rules: RulesConfig{
			DiceSessionTTL: 15 * time.Minute,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:6379"}, cfg.Redis.Addrs)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ConnMaxIdleTime)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.FilePath)
	assert.Equal(t, 15*time.Minute, cfg.Rules.DiceSessionTTL)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.yaml")
	err := os.WriteFile(path, []byte(`
redis:
  addrs:
    - redis-1:6379
    - redis-2:6379
  tls: true
logging:
  level: DEBUG
  format: json
  file_path: /tmp/sheet.log
  file_max_size_mb: 20
rules:
  catalog_dir: ./tables
  dice_session_ttl: 1h
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"redis-1:6379", "redis-2:6379"}, cfg.Redis.Addrs)
	assert.True(t, cfg.Redis.TLS)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/sheet.log", cfg.Logging.FilePath)
	assert.Equal(t, 20, cfg.Logging.FileMaxSizeMB)
	assert.Equal(t, "./tables", cfg.Rules.CatalogDir)
	assert.Equal(t, time.Hour, cfg.Rules.DiceSessionTTL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHEET_REDIS_PASSWORD", "hunter2")
	t.Setenv("SHEET_LOGGING_LEVEL", "ERROR")
	t.Setenv("SHEET_RULES_DICE_SESSION_TTL", "30m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "hunter2", cfg.Redis.Password)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 30*time.Minute, cfg.Rules.DiceSessionTTL)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no redis addrs", func(c *Config) { c.Redis.Addrs = nil }, "redis.addrs"},
		{"empty redis addr", func(c *Config) { c.Redis.Addrs = []string{" "} }, "redis.addrs"},
		{"negative db", func(c *Config) { c.Redis.DB = -1 }, "redis.db"},
		{"cluster with db", func(c *Config) {
			c.Redis.Addrs = []string{"a:6379", "b:6379"}
			c.Redis.DB = 2
		}, "redis.db"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"file without size", func(c *Config) {
			c.Logging.FilePath = "sheet.log"
			c.Logging.FileMaxSizeMB = 0
		}, "logging.file_max_size_mb"},
		{"zero ttl", func(c *Config) { c.Rules.DiceSessionTTL = 0 }, "rules.dice_session_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestProperty_UnknownLogLevelIsRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "level")
		cfg := validConfig()
		cfg.Logging.Level = level

		err := cfg.Validate()
		known := false
		for _, l := range validLevels {
			if l == level {
				known = true
			}
		}
		if known && err != nil {
			rt.Fatalf("level %q should be accepted: %v", level, err)
		}
		if !known && err == nil {
			rt.Fatalf("level %q should be rejected", level)
		}
	})
}
