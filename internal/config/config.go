// Package config loads the sheet tool configuration from an optional YAML
// file and SHEET_ environment overrides.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g. SHEET_REDIS_ADDRS
const EnvPrefix = "SHEET"

// RedisConfig holds the snapshot store connection settings
type RedisConfig struct {
	// Addrs lists host:port endpoints; more than one selects cluster mode
	Addrs           []string      `mapstructure:"addrs"`
	Password        string        `mapstructure:"password"`
	DB              int           `mapstructure:"db"`
	PoolSize        int           `mapstructure:"pool_size"`
	MinIdleConns    int           `mapstructure:"min_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MaxRetries      int           `mapstructure:"max_retries"`
	TLS             bool          `mapstructure:"tls"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
	// FilePath enables rotating file output when set
	FilePath       string `mapstructure:"file_path"`
	FileMaxSizeMB  int    `mapstructure:"file_max_size_mb"`
	FileMaxBackups int    `mapstructure:"file_max_backups"`
	FileMaxAgeDays int    `mapstructure:"file_max_age_days"`
	FileCompress   bool   `mapstructure:"file_compress"`
}

// RulesConfig holds rules-table and roll audit settings
type RulesConfig struct {
	// CatalogDir replaces the embedded skills, classes and races tables
	CatalogDir string `mapstructure:"catalog_dir"`
	// DiceSessionTTL is how long ability roll audits are kept
	DiceSessionTTL time.Duration `mapstructure:"dice_session_ttl"`
}

// Config is the top-level application configuration
type Config struct {
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
	Rules   RulesConfig   `mapstructure:"rules"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"text", "json"}
)

// Validate checks all configuration invariants
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Redis.Addrs) == 0 {
		vb.RequiredField("redis.addrs")
	}
	for _, addr := range c.Redis.Addrs {
		if strings.TrimSpace(addr) == "" {
			vb.Field("redis.addrs", "must not contain empty addresses")
			break
		}
	}
	if c.Redis.DB < 0 {
		vb.Fieldf("redis.db", "must be >= 0, got %d", c.Redis.DB)
	}
	if c.Redis.PoolSize < 0 {
		vb.Fieldf("redis.pool_size", "must be >= 0, got %d", c.Redis.PoolSize)
	}
	if len(c.Redis.Addrs) > 1 && c.Redis.DB != 0 {
		vb.Field("redis.db", "cluster mode only supports db 0")
	}

	errors.ValidateEnum("logging.level", c.Logging.Level, validLevels, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, validFormats, vb)
	if c.Logging.FilePath != "" && c.Logging.FileMaxSizeMB < 1 {
		vb.Fieldf("logging.file_max_size_mb", "must be >= 1 when file output is enabled, got %d", c.Logging.FileMaxSizeMB)
	}

	if c.Rules.DiceSessionTTL <= 0 {
		vb.Fieldf("rules.dice_session_ttl", "must be positive, got %s", c.Rules.DiceSessionTTL)
	}

	return vb.Build()
}

// Load reads configuration from path when it is not empty, applies
// environment overrides and defaults, and validates the result
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance
func LoadFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("redis.addrs", []string{"localhost:6379"})
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 0)
	v.SetDefault("redis.conn_max_idle_time", "5m")
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.tls", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file_path", "")
	v.SetDefault("logging.file_max_size_mb", 10)
	v.SetDefault("logging.file_max_backups", 3)
	v.SetDefault("logging.file_max_age_days", 28)
	v.SetDefault("logging.file_compress", false)

	v.SetDefault("rules.catalog_dir", "")
	v.SetDefault("rules.dice_session_ttl", "15m")
}
