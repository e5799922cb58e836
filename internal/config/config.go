package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Catalog backends.
const (
	BackendMemory = "memory"
	BackendGraph  = "graph"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP      HTTPConfig      `envPrefix:"SERVER_"`
	Graph     GraphConfig     `envPrefix:"GRAPH_"`
	Catalog   CatalogConfig   `envPrefix:"CATALOG_"`
	Session   SessionConfig   `envPrefix:"SESSION_"`
	Logging   LoggingConfig   `envPrefix:"LOG_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string        `env:"HOST"             envDefault:"0.0.0.0"`
	Port            int           `env:"PORT"             envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"  envSeparator:","`
	UploadMaxBytes  int64         `env:"UPLOAD_MAX_BYTES" envDefault:"10485760"`
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GraphConfig describes connectivity to the Neo4j catalog store.
type GraphConfig struct {
	URI            string `env:"URI"`
	Database       string `env:"DATABASE"`
	Username       string `env:"USERNAME"`
	Password       string `env:"PASSWORD"`
	MaxConnections int    `env:"MAX_CONNECTIONS" envDefault:"10"`
}

// CatalogConfig selects where profiles and deals are read from.
type CatalogConfig struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}

// SessionConfig controls the cookie-bound session store.
type SessionConfig struct {
	Secret        string        `env:"SECRET"`
	TTL           time.Duration `env:"TTL"            envDefault:"24h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
	SecureCookie  bool          `env:"SECURE_COOKIE"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `env:"LEVEL"          envDefault:"info"`
	Format        string `env:"FORMAT"         envDefault:"text"` // text|json
	Colored       bool   `env:"COLOR"`
	IncludeCaller bool   `env:"INCLUDE_CALLER"`
}

// TelemetryConfig configures trace export.
type TelemetryConfig struct {
	ServiceName string `env:"SERVICE_NAME"                envDefault:"bizbridge"`
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool   `env:"EXPORTER_OTLP_INSECURE"`
}

// Load reads an optional .env file (DOTENV_PATH, default ".env") and then
// parses the environment. Variables already set win over the file.
func Load() (Config, error) {
	path := os.Getenv("DOTENV_PATH")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv parses and validates configuration from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Catalog.Backend = strings.ToLower(strings.TrimSpace(cfg.Catalog.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.HTTP.Port)
	}
	if c.HTTP.UploadMaxBytes <= 0 {
		return fmt.Errorf("upload max bytes must be positive, got %d", c.HTTP.UploadMaxBytes)
	}
	switch c.Catalog.Backend {
	case BackendMemory:
	case BackendGraph:
		if c.Graph.URI == "" {
			return fmt.Errorf("catalog backend %q requires GRAPH_URI", BackendGraph)
		}
	default:
		return fmt.Errorf("unknown catalog backend %q", c.Catalog.Backend)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session sweep interval must be positive, got %s", c.Session.SweepInterval)
	}
	return nil
}
