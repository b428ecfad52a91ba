// Package config loads application configuration from defaults, an optional
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. HARMWATCH_LOG__LEVEL=debug.
	EnvPrefix = "HARMWATCH_"
	// ConfigPathEnv names the variable holding the config file path.
	ConfigPathEnv = EnvPrefix + "CONFIG"
	// DotEnvFile is loaded into the environment when present.
	DotEnvFile = ".env"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	CORS       CORSConfig       `koanf:"cors"`
	App        AppConfig        `koanf:"app"`
	Stats      StatsConfig      `koanf:"stats"`
	Pagination PaginationConfig `koanf:"pagination"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port" validate:"required,numeric"`
	MetricsPort       string        `koanf:"metrics_port" validate:"required,numeric"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// CORSConfig contains cross-origin settings. "*" allows every origin.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// AppConfig contains values reported by the liveness and status endpoints.
type AppConfig struct {
	Name   string `koanf:"name" validate:"required"`
	Banner string `koanf:"banner"`
}

// StatsConfig holds the fixed counters reported by the stats endpoint.
type StatsConfig struct {
	TotalUsers           int            `koanf:"total_users" validate:"gte=0"`
	TotalEvidence        int            `koanf:"total_evidence" validate:"gte=0"`
	CategoryDistribution map[string]int `koanf:"category_distribution"`
}

// PaginationConfig contains list endpoint defaults.
type PaginationConfig struct {
	DefaultLimit int `koanf:"default_limit" validate:"gte=1"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              "10000",
			MetricsPort:       "9090",
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		App: AppConfig{
			Name:   "harmwatch",
			Banner: "Backend is live",
		},
		Stats: StatsConfig{
			TotalUsers:    128,
			TotalEvidence: 56,
		},
		Pagination: PaginationConfig{
			DefaultLimit: 9,
		},
	}
}

func defaultCategoryDistribution() map[string]int {
	return map[string]int{
		"bias":    1,
		"privacy": 1,
	}
}

// Load builds the configuration. Sources are applied in order:
// defaults, the YAML file at path (skipped when path is empty), then the
// environment, including variables from an optional .env file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Stats.CategoryDistribution == nil {
		cfg.Stats.CategoryDistribution = defaultCategoryDistribution()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// envKey maps environment variable names to config keys.
// PORT is honoured for hosting platforms that inject it; prefixed variables
// use a double underscore as the section separator.
// Returning "" makes koanf skip the variable.
func envKey(name string) string {
	if name == "PORT" {
		return "server.port"
	}
	if !strings.HasPrefix(name, EnvPrefix) || name == ConfigPathEnv {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
