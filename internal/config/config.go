package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverPostgREST = "postgrest"
	DriverSQLite    = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Insights InsightsConfig `mapstructure:"insights"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               string        `mapstructure:"port"`
	Env                string        `mapstructure:"env"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	RateLimit          int           `mapstructure:"rate_limit"`
}

// StoreConfig selects and configures the mood entry store
type StoreConfig struct {
	Driver    string          `mapstructure:"driver"`
	PostgREST PostgRESTConfig `mapstructure:"postgrest"`
	SQLite    SQLiteConfig    `mapstructure:"sqlite"`
}

// PostgRESTConfig holds the hosted PostgREST (Supabase) connection
type PostgRESTConfig struct {
	URL        string        `mapstructure:"url"`
	ServiceKey string        `mapstructure:"service_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// SQLiteConfig holds the local database file location
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// InsightsConfig tunes the insights screen
type InsightsConfig struct {
	// Timezone decides which weekday a check-in falls on
	Timezone      string        `mapstructure:"timezone"`
	DefaultUserID string        `mapstructure:"default_user_id"`
	VisitTTL      time.Duration `mapstructure:"visit_ttl"`
	VisitCapacity int           `mapstructure:"visit_capacity"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from .env, an optional config.yaml and
// THRIVETRACK_* environment variables, in increasing precedence
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("THRIVETRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by hosting platforms
	_ = v.BindEnv("server.port", "THRIVETRACK_SERVER_PORT", "PORT")
	_ = v.BindEnv("store.postgrest.url", "THRIVETRACK_STORE_POSTGREST_URL", "SUPABASE_URL")
	_ = v.BindEnv("store.postgrest.service_key", "THRIVETRACK_STORE_POSTGREST_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{})
	v.SetDefault("server.rate_limit", 300)

	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.sqlite.path", "thrivetrack.db")
	v.SetDefault("store.postgrest.timeout", 8*time.Second)

	v.SetDefault("insights.timezone", "UTC")
	v.SetDefault("insights.default_user_id", "demo-student-1")
	v.SetDefault("insights.visit_ttl", 2*time.Hour)
	v.SetDefault("insights.visit_capacity", 10000)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks that the selected store is fully configured
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgREST:
		if c.Store.PostgREST.URL == "" {
			return fmt.Errorf("store.postgrest.url (SUPABASE_URL) is required for the %s driver", DriverPostgREST)
		}
		if c.Store.PostgREST.ServiceKey == "" {
			return fmt.Errorf("store.postgrest.service_key (SUPABASE_SERVICE_KEY) is required for the %s driver", DriverPostgREST)
		}
	case DriverSQLite:
		if c.Store.SQLite.Path == "" {
			return fmt.Errorf("store.sqlite.path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %s or %s)", c.Store.Driver, DriverPostgREST, DriverSQLite)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Insights.DefaultUserID == "" {
		return fmt.Errorf("insights.default_user_id is required")
	}
	if c.Insights.VisitTTL <= 0 {
		return fmt.Errorf("insights.visit_ttl must be positive")
	}
	if c.Insights.VisitCapacity <= 0 {
		return fmt.Errorf("insights.visit_capacity must be positive")
	}
	return nil
}

// Location resolves the insights timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Insights.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid insights.timezone %q: %w", c.Insights.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
