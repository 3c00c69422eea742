package middleware

import (
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

// RateLimitConfig controls the per-client token bucket.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type Middleware struct {
	l         log.Logger
	rateLimit RateLimitConfig
}

func New(l log.Logger, rateLimit RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		rateLimit: rateLimit,
	}
}
