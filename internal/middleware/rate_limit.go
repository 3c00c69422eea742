package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Waghib/Speech-To-Plan-reminder/pkg/response"
)

// limiterPool keeps one token bucket per client IP.
type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (p *limiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.limiters[ip]; ok {
		return l
	}
	l := rate.NewLimiter(p.rps, p.burst)
	p.limiters[ip] = l
	return l
}

// RateLimit rejects clients over their per-IP budget with 429. Zero
// RequestsPerSecond disables the middleware.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimit.RequestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := m.rateLimit.Burst
	if burst <= 0 {
		burst = 1
	}
	pool := &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(m.rateLimit.RequestsPerSecond),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !pool.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}
		c.Next()
	}
}
