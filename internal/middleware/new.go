package middleware

import (
	pkgLog "shift-calendar-sync/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l           pkgLog.Logger
	rateLimiter *rateLimiter
}

// Config holds middleware tuning knobs.
type Config struct {
	// RateLimitPerMin is the per-client request budget. Zero disables
	// rate limiting.
	RateLimitPerMin int
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	var rl *rateLimiter
	if cfg.RateLimitPerMin > 0 {
		rl = newRateLimiter(cfg.RateLimitPerMin)
	}

	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
