package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.burst) {
			// Idle long enough to be fully refilled.
			delete(rl.limiters, key)
		}
	}
}

// RateLimit throttles requests per client IP. Used on the auth endpoints to
// slow down credential guessing.
func RateLimit(perMinute, burst int) ginext.HandlerFunc {
	rl := &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.cleanup()
		}
	}()

	return func(c *ginext.Context) {
		if !rl.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ginext.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
