package config

import "time"

// RateLimitConfig controls the fixed-window rate limiter. Each client IP
// gets Limit requests per Window; the counter lives in Redis so the limit
// holds across server restarts.
type RateLimitConfig struct {
	Enabled bool          // master switch
	Limit   int           // max requests per window
	Window  time.Duration // window length
	Prefix  string        // key namespace in Redis
}

// LoadRateLimitConfig builds a RateLimitConfig from the environment with
// defaults of 120 requests per minute.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   getenvInt("RATE_LIMIT_MAX", 120),
		Window:  parseDur(getenv("RATE_LIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
