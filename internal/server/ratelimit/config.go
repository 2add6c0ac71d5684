package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// EndpointConfig holds per-endpoint rate limit settings. A Limit of -1
// means unlimited. Method "" matches any method. A Path ending in "/"
// is treated as a prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration // time window
	Burst  int           // bucket capacity; defaults to Limit when 0
}

// DefaultEndpointConfigs returns the per-endpoint limits. Endpoints
// that trigger a model call are kept tight; bookkeeping endpoints get
// room to spare.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Model-backed: every request costs an upstream model call.
		{Path: "/questions/generate", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
		{Path: "/sessions/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},

		// Bookkeeping: cheap in-memory operations.
		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute},
		{Path: "/sessions/", Method: "GET", Limit: 120, Window: time.Minute},
		{Path: "/sessions/", Method: "DELETE", Limit: 60, Window: time.Minute},
	}
}

// LoadConfig loads rate limit configuration from environment variables,
// falling back to defaults.
func LoadConfig() *Config {
	return &Config{
		Enabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 60),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
