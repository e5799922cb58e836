package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTP.Addr() != "0.0.0.0:8080" {
		t.Fatalf("expected default addr, got %s", cfg.HTTP.Addr())
	}
	if cfg.HTTP.ReadTimeout != 10*time.Second || cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts %+v", cfg.HTTP)
	}
	if cfg.Catalog.Backend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Catalog.Backend)
	}
	if cfg.Session.TTL != 24*time.Hour || cfg.Session.Secret != "" {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.Telemetry.ServiceName != "bizbridge" || cfg.Telemetry.Endpoint != "" {
		t.Fatalf("unexpected telemetry config %+v", cfg.Telemetry)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("CATALOG_BACKEND", " Graph ")
	t.Setenv("GRAPH_URI", "neo4j://localhost:7687")
	t.Setenv("GRAPH_MAX_CONNECTIONS", "4")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_SECURE_COOKIE", "true")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.HTTP.Port != 9090 || cfg.HTTP.ReadTimeout != 3*time.Second {
		t.Fatalf("unexpected http config %+v", cfg.HTTP)
	}
	if len(cfg.HTTP.AllowedOrigins) != 2 || cfg.HTTP.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.HTTP.AllowedOrigins)
	}
	if cfg.Catalog.Backend != BackendGraph || cfg.Graph.MaxConnections != 4 {
		t.Fatalf("unexpected graph config %+v %+v", cfg.Catalog, cfg.Graph)
	}
	if !cfg.Session.SecureCookie || cfg.Session.Secret != "s3cret" {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"port out of range", map[string]string{"SERVER_PORT": "70000"}, "port 70000 is out of range"},
		{"port not a number", map[string]string{"SERVER_PORT": "abc"}, "parse env"},
		{"bad duration", map[string]string{"SESSION_TTL": "forever"}, "parse env"},
		{"graph without uri", map[string]string{"CATALOG_BACKEND": "graph"}, "requires GRAPH_URI"},
		{"unknown backend", map[string]string{"CATALOG_BACKEND": "postgres"}, "unknown catalog backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadReadsDotenvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("BIZBRIDGE_TEST_UNSET=1\nLOG_LEVEL=debug\nSERVER_HOST=127.0.0.1\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("DOTENV_PATH", path)
	t.Setenv("SERVER_HOST", "10.0.0.1")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Cleanup(func() {
		os.Unsetenv("BIZBRIDGE_TEST_UNSET")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level from file, got %q", cfg.Logging.Level)
	}
	if cfg.HTTP.Host != "10.0.0.1" {
		t.Fatalf("expected process env to win, got %q", cfg.HTTP.Host)
	}
}

func TestLoadIgnoresMissingDotenv(t *testing.T) {
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	if _, err := Load(); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
