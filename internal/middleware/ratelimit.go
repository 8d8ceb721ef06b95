package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter bounds requests per key (client IP) over a sliding
// window. Good enough for a single-instance deployment; state is lost on
// restart.
type InMemoryRateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	l := &InMemoryRateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go l.cleanup()
	return l
}

func (l *InMemoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	recent := pruneBefore(l.hits[key], time.Now().Add(-l.window))
	if len(recent) >= l.limit {
		l.hits[key] = recent
		return false
	}
	l.hits[key] = append(recent, time.Now())
	return true
}

// cleanup drops keys whose hits have all aged out, so idle IPs do not
// accumulate forever.
func (l *InMemoryRateLimiter) cleanup() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for key, hits := range l.hits {
			if recent := pruneBefore(hits, cutoff); len(recent) == 0 {
				delete(l.hits, key)
			} else {
				l.hits[key] = recent
			}
		}
		l.mu.Unlock()
	}
}

func pruneBefore(hits []time.Time, cutoff time.Time) []time.Time {
	var recent []time.Time
	for _, h := range hits {
		if h.After(cutoff) {
			recent = append(recent, h)
		}
	}
	return recent
}

// RateLimit limits by client IP. Applied to public write endpoints
// (inscriptions, contact forms, login).
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
