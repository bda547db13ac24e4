// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPAddr string

	// CRMBaseURL is the backend collaborator that owns the authoritative
	// lead records. All origin endpoints and mutation endpoints hang off it.
	CRMBaseURL      string
	UpstreamTimeout time.Duration
	// FetchLimit caps how many records a single origin fetch asks for.
	FetchLimit int
	// UpstreamRatePerSec throttles outbound calls to the collaborator.
	UpstreamRatePerSec float64

	// RedisURL enables the origin-fetch snapshot cache when set.
	RedisURL  string
	CacheTTL  time.Duration
	CacheSize int

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CRMBaseURL:         getEnv("CRM_BASE_URL", ""),
		UpstreamTimeout:    mustDuration(getEnv("UPSTREAM_TIMEOUT", "10s")),
		FetchLimit:         mustInt(getEnv("FETCH_LIMIT", "100")),
		UpstreamRatePerSec: mustFloat(getEnv("UPSTREAM_RATE_PER_SEC", "20")),
		RedisURL:           getEnv("REDIS_URL", ""),
		CacheTTL:           mustDuration(getEnv("CACHE_TTL", "30s")),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
	}

	if cfg.CRMBaseURL == "" {
		return nil, fmt.Errorf("CRM_BASE_URL is required")
	}
	if cfg.FetchLimit < 1 {
		return nil, fmt.Errorf("FETCH_LIMIT must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func mustDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid duration %q: %v", raw, err))
	}
	return d
}

func mustInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid integer %q: %v", raw, err))
	}
	return n
}

func mustFloat(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		panic(fmt.Sprintf("invalid number %q: %v", raw, err))
	}
	return f
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
