package ratelimit

// RateLimitConfig sets the per-window request budgets. A zero limit disables
// that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter limits how often a keyed action may run.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
}

// LoginRateLimit is the budget applied per source IP on the login endpoint.
var LoginRateLimit = RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
}
