package routes

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("QUOTE_POLL_INTERVAL", "")
		t.Setenv("QUOTE_SESSION_TTL", "")
		t.Setenv("DYNAMODB_CREATE_TABLES", "")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.PollInterval != 5*time.Second || cfg.SessionTTL != time.Hour || cfg.CreateTables {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("QUOTE_POLL_INTERVAL", "2s")
		t.Setenv("QUOTE_SESSION_TTL", "30m")
		t.Setenv("DYNAMODB_CREATE_TABLES", "true")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9090 || cfg.PollInterval != 2*time.Second || cfg.SessionTTL != 30*time.Minute || !cfg.CreateTables {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("QUOTE_POLL_INTERVAL", "-1s")
		if _, err := LoadConfig(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "abc")
		if _, err := LoadConfig(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
