package middleware

import (
	"shopping-list/config"
	"shopping-list/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil disables rate limiting
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
