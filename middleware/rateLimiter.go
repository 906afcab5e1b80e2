// rateLimiter.go - Per-client request rate limiting
//
// Auth routes get a strict limiter (credential stuffing), the pollution API
// a permissive one. One token bucket per client IP.

package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter tracks one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	rps     rate.Limit // Refill rate, requests per second
	burst   int        // Bucket size
}

// NewRateLimiter builds a limiter allowing rps sustained requests per second
// with the given burst per client.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.clients[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.rps, rl.burst)
		rl.clients[ip] = limiter
	}
	return limiter
}

// Middleware returns the Gin middleware enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests, please try again later.",
			})
			return
		}
		c.Next()
	}
}
