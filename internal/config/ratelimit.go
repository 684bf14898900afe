package config

import "time"

// RateLimitConfig controls the Redis token-bucket limiter applied to the
// login endpoint.  Credential guessing is the only brute-forceable surface of
// the API, so the limiter keys on client IP and refills slowly.
type RateLimitConfig struct {
	Enabled        bool          // master switch
	Capacity       int           // bucket size (burst allowance)
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill cadence
	TTL            time.Duration // how long an idle bucket lives in Redis
	Prefix         string        // Redis key namespace
}

// LoadRateLimitConfig reads limiter settings from the environment with
// defaults tuned for interactive login traffic: a burst of 10 attempts,
// refilling one attempt every two seconds.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "10")),
		RefillTokens:   atoi(getenv("RATE_LIMIT_REFILL_TOKENS", "1")),
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "2s")),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
