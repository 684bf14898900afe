package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig controls the Redis response cache that fronts the public,
// unauthenticated listing endpoints (recipes, categories, roles).  Only GET
// responses are cached; protected endpoints never pass through the cache
// because their responses depend on the caller's identity.
type CacheConfig struct {
	Enabled      bool          // master switch
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // Redis key namespace
	MaxBodyBytes int           // responses larger than this are not stored
}

// LoadCacheConfig reads the cache settings from the environment, applying
// defaults when variables are unset.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("CACHE_TTL", "30s")),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: atoi(getenv("CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
