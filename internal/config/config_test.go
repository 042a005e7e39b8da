package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("CFG_INT", "not-a-number")
	if got := getEnvInt("CFG_INT", 3); got != 3 {
		t.Fatalf("getEnvInt returned %d, want fallback 3", got)
	}
	t.Setenv("CFG_INT", "25")
	if got := getEnvInt("CFG_INT", 3); got != 25 {
		t.Fatalf("getEnvInt returned %d, want 25", got)
	}

	t.Setenv("CFG_DURATION", "1m30s")
	if got := getEnvDuration("CFG_DURATION", time.Second); got != 90*time.Second {
		t.Fatalf("getEnvDuration returned %v, want 1m30s", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	for _, key := range []string{
		"PORT", "DATABASE_URL", "STORAGE_DRIVER", "LOG_LEVEL", "LOG_FORMAT", "SEED", "TIMEZONE",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "SHUTDOWN_TIMEOUT",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed {
		t.Fatalf("expected Seed default false")
	}
	if cfg.StorageDriver != StorageDriverPostgres || cfg.Timezone != "Local" || cfg.ServiceName != "sleep-journal-api" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 10*time.Second || cfg.DBMaxOpenConns != 10 || cfg.DBMaxIdleConns != 5 {
		t.Fatalf("numeric defaults not applied: %+v", cfg)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("TIMEZONE", "Europe/Prague")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318/v1/traces")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.StorageDriver != StorageDriverMemory || cfg.Timezone != "Europe/Prague" || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OTLPEndpoint != "http://collector:4318/v1/traces" {
		t.Fatalf("otel env override missing: %+v", cfg)
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{name: "local", timezone: "Local", want: time.Local.String()},
		{name: "empty", timezone: "", want: time.Local.String()},
		{name: "named zone", timezone: "Asia/Tokyo", want: "Asia/Tokyo"},
		{name: "utc", timezone: "UTC", want: "UTC"},
		{name: "invalid", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := (&Config{Timezone: tt.timezone}).Location()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Location() expected error for %q", tt.timezone)
				}
				return
			}
			if err != nil {
				t.Fatalf("Location() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("Location() = %s, want %s", loc, tt.want)
			}
		})
	}
}
