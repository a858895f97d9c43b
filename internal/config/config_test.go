package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if cfg.UpcomingWindowDays != 7 {
		t.Fatalf("window = %d, want 7", cfg.UpcomingWindowDays)
	}
	if cfg.Auth.APIKeyHeader != "X-Api-Key" {
		t.Fatalf("api key header = %q", cfg.Auth.APIKeyHeader)
	}
	if !cfg.Auth.DevMode {
		t.Fatalf("dev mode should default to true")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
listen: ":9090"
database_dsn: "postgres://localhost/daycare"
upcoming_window_days: 14
reminder_cron: "30 7 * * *"
auth:
  base_url: "https://auth.example.com"
  api_key: "secret"
  dev_mode: false
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if cfg.DatabaseDSN != "postgres://localhost/daycare" {
		t.Fatalf("dsn = %q", cfg.DatabaseDSN)
	}
	if cfg.UpcomingWindowDays != 14 {
		t.Fatalf("window = %d", cfg.UpcomingWindowDays)
	}
	if cfg.ReminderCron != "30 7 * * *" {
		t.Fatalf("cron = %q", cfg.ReminderCron)
	}
	if cfg.Auth.DevMode {
		t.Fatalf("dev mode should be false")
	}
	// Default rellenado por Normalize aunque el archivo no lo traiga.
	if cfg.Auth.APIKeyHeader != "X-Api-Key" {
		t.Fatalf("api key header = %q", cfg.Auth.APIKeyHeader)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("listen: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("UPCOMING_WINDOW_DAYS", "3")
	t.Setenv("AUTH_DEV_MODE", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":7070" {
		t.Fatalf("listen = %q, want env override", cfg.Listen)
	}
	if cfg.UpcomingWindowDays != 3 {
		t.Fatalf("window = %d, want 3", cfg.UpcomingWindowDays)
	}
	if cfg.Auth.DevMode {
		t.Fatalf("dev mode should be overridden to false")
	}
}

func TestLoad_InvalidEnvWindowIgnored(t *testing.T) {
	t.Setenv("UPCOMING_WINDOW_DAYS", "banana")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UpcomingWindowDays != 7 {
		t.Fatalf("window = %d, want default 7", cfg.UpcomingWindowDays)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
}
