// Package config manages environment configuration.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types with koanf, and
// validates required values so the app fails fast on bad or missing
// config.
//
// Env vars use the GEARSHED_ prefix with "__" as the nesting delimiter:
//
//	GEARSHED_DATABASE__HOST            -> database.host
//	GEARSHED_DATABASE__MAX_CONNECTIONS -> database.max_connections
//	GEARSHED_SERVER__PORT              -> server.port
//
// The database block is consumed by the connection pool once at
// construction; it is never re-read afterward.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env before
	// anything reads it, when one exists.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix selects which environment variables belong to this app.
const envPrefix = "GEARSHED_"

// Config is the root configuration object for the application.
type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch console/JSON output.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// stored as seconds in the environment.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool
// sizing. MinConnections is the pre-warmed floor, MaxConnections the hard
// ceiling, and ConnectionTimeout (seconds) bounds both startup and every
// pool acquire.
type DatabaseConfig struct {
	Host              string `koanf:"host" validate:"required"`
	Port              int    `koanf:"port" validate:"required"`
	User              string `koanf:"user" validate:"required"`
	Password          string `koanf:"password"`
	Name              string `koanf:"name" validate:"required"`
	SSLMode           string `koanf:"ssl_mode" validate:"required"`
	MinConnections    int    `koanf:"min_connections" validate:"min=0"`
	MaxConnections    int    `koanf:"max_connections" validate:"required,min=1"`
	ConnectionTimeout int    `koanf:"connection_timeout" validate:"required,min=1"`
}

// AcquireTimeout returns the connection timeout as a duration.
func (d DatabaseConfig) AcquireTimeout() time.Duration {
	return time.Duration(d.ConnectionTimeout) * time.Second
}

// New loads configuration from the environment, applies defaults,
// validates it, and returns the resulting config.
func New() (*Config, error) {
	k := koanf.New(".")

	// Strip the prefix, lowercase, and turn "__" into the koanf nesting
	// delimiter so GEARSHED_DATABASE__HOST addresses database.host.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	if cfg.Database.MinConnections > cfg.Database.MaxConnections {
		return nil, fmt.Errorf("database.min_connections (%d) exceeds database.max_connections (%d)",
			cfg.Database.MinConnections, cfg.Database.MaxConnections)
	}

	return cfg, nil
}

// defaultConfig returns a Config pre-filled with local-development
// defaults; koanf overwrites whatever the environment provides.
func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15,
			WriteTimeout: 15,
			IdleTimeout:  60,
		},
		Database: DatabaseConfig{
			Host:              "localhost",
			Port:              5432,
			User:              "postgres",
			Name:              "equipment_db",
			SSLMode:           "disable",
			MinConnections:    1,
			MaxConnections:    10,
			ConnectionTimeout: 30,
		},
	}
}
