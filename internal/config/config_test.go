package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("VITE_API_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppName != "samvad-users-client" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.APIBaseURL != "" {
		t.Fatalf("expected empty base url, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("expected no timeout by default, got %s", cfg.HTTPTimeout)
	}
}

func TestLoadBaseURLPrecedence(t *testing.T) {
	t.Setenv("VITE_API_BASE_URL", "https://vite.example.com")
	t.Setenv("API_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://vite.example.com" {
		t.Fatalf("expected VITE_API_BASE_URL fallback, got %q", cfg.APIBaseURL)
	}

	t.Setenv("API_BASE_URL", "https://api.example.com")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected API_BASE_URL to win, got %q", cfg.APIBaseURL)
	}
}

func TestLoadTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "15")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %s", cfg.HTTPTimeout)
	}

	t.Setenv("HTTP_TIMEOUT_SECONDS", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}
