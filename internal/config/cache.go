package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig controls the response cache on public GET listings. Caching
// is disabled when Enabled is false or no Redis client could be built.
type CacheConfig struct {
	Enabled bool          // master switch
	TTL     time.Duration // lifetime of a cached response
	Prefix  string        // key namespace in Redis
}

// LoadCacheConfig builds a CacheConfig from the environment with sensible
// defaults: 30 second TTL under the "cache" prefix.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}

// Shared env helpers used by the cache and rate-limit loaders.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
