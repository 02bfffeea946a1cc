package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the countries API configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Summary  SummaryConfig  `mapstructure:"summary"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// UpstreamConfig contains the external data source endpoints and client settings.
// Zero values are filled from the default tags.
type UpstreamConfig struct {
	CountriesURL string        `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	RatesURL     string        `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD"`
	Timeout      time.Duration `mapstructure:"timeout" default:"30s"`
	RateLimit    float64       `mapstructure:"rate_limit" default:"5"`
	Burst        int           `mapstructure:"burst" default:"2"`
	UserAgent    string        `mapstructure:"user_agent" default:"country-mirror/1.0"`
}

// SummaryConfig controls the rendered summary image
type SummaryConfig struct {
	CachePath string `mapstructure:"cache_path"`
	// Schedule is a robfig/cron spec; empty disables periodic rendering.
	Schedule string `mapstructure:"schedule"`
}

// CORSConfig contains CORS middleware settings
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// MetricsConfig contains Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// legacyEnv maps the older deployment environment names
// onto config keys.
var legacyEnv = map[string]string{
	"database.host":     "DB_HOST",
	"database.user":     "DB_USER",
	"database.password": "DB_PASSWORD",
	"database.database": "DB_NAME",
	"database.port":     "DB_PORT",
	"server.port":       "PORT",
}

// upstreamKeys get their defaults from struct tags, so viper only learns
// about them through explicit env bindings.
var upstreamKeys = []string{
	"upstream.countries_url",
	"upstream.rates_url",
	"upstream.timeout",
	"upstream.rate_limit",
	"upstream.burst",
	"upstream.user_agent",
}

// Load loads configuration from file and environment variables.
// A .env file in the working directory is loaded first when present.
// configPath may be empty, in which case only defaults and env are used.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	for _, key := range upstreamKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := defaults.Set(&config.Upstream); err != nil {
		return nil, fmt.Errorf("failed to apply upstream defaults: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3031)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.request_timeout", "60s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.database", "countries")

	// Summary defaults
	v.SetDefault("summary.cache_path", "cache/summary.png")
	v.SetDefault("summary.schedule", "@every 10m")

	// CORS defaults
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func validate(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Database.Database == "" {
		return fmt.Errorf("database.database is required")
	}
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", config.Server.Port)
	}
	if config.Summary.CachePath == "" {
		return fmt.Errorf("summary.cache_path is required")
	}
	if config.Upstream.RateLimit <= 0 {
		return fmt.Errorf("upstream.rate_limit must be positive")
	}
	return nil
}
