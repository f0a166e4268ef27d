// Package config loads the application settings from an optional YAML file
// and WEALTH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"wealth-objective/logging"
)

const envPrefix = "WEALTH"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       logging.Config  `mapstructure:"log"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Report    ReportConfig    `mapstructure:"report"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Refill   time.Duration `mapstructure:"refill"`
}

// RedisConfig selects the projection history store. An empty Addr keeps the
// history in memory.
type RedisConfig struct {
	Addr        string `mapstructure:"addr"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db"`
	HistoryKey  string `mapstructure:"history_key"`
	HistorySize int    `mapstructure:"history_size"`
}

type ReportConfig struct {
	// BaseYear is the calendar year of projection year 0. Zero means the current year.
	BaseYear int `mapstructure:"base_year"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("rate_limit.capacity", 5)
	v.SetDefault("rate_limit.refill", time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.history_key", "wealth:projections")
	v.SetDefault("redis.history_size", 100)

	v.SetDefault("report.base_year", 0)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load reads configPath when it is not empty, applies environment overrides
// and defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail at runtime.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.RateLimit.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.capacity must be positive, got %d", c.RateLimit.Capacity))
	}
	if c.RateLimit.Refill <= 0 {
		errs = append(errs, errors.New("rate_limit.refill must be positive"))
	}
	if c.Redis.HistorySize < 0 {
		errs = append(errs, fmt.Errorf("redis.history_size must not be negative, got %d", c.Redis.HistorySize))
	}
	if c.Redis.Addr != "" && c.Redis.HistoryKey == "" {
		errs = append(errs, errors.New("redis.history_key must not be empty"))
	}
	if c.Report.BaseYear < 0 {
		errs = append(errs, fmt.Errorf("report.base_year must not be negative, got %d", c.Report.BaseYear))
	}
	return errors.Join(errs...)
}
