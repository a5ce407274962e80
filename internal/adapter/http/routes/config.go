package routes

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mecanica_xpto_quotes/internal/usecase"
	"mecanica_xpto_quotes/internal/usecase/reconciliation"
)

// Config is read from the environment (a .env file is loaded by cmd/api).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - QUOTE_POLL_INTERVAL (default: 5s)
//   - QUOTE_SESSION_TTL (default: 60m)
//   - DYNAMODB_CREATE_TABLES (default: false; creates missing tables on start)
type Config struct {
	Port         int
	PollInterval time.Duration
	SessionTTL   time.Duration
	CreateTables bool
}

func LoadConfig() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return Config{}, fmt.Errorf("invalid PORT: %q", os.Getenv("PORT"))
	}
	poll, err := parsePositiveDuration("QUOTE_POLL_INTERVAL", reconciliation.DefaultPollInterval)
	if err != nil {
		return Config{}, err
	}
	ttl, err := parsePositiveDuration("QUOTE_SESSION_TTL", usecase.DefaultSessionTTL)
	if err != nil {
		return Config{}, err
	}
	createTables, _ := strconv.ParseBool(getenvDefault("DYNAMODB_CREATE_TABLES", "false"))

	return Config{
		Port:         port,
		PollInterval: poll,
		SessionTTL:   ttl,
		CreateTables: createTables,
	}, nil
}

func parsePositiveDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
