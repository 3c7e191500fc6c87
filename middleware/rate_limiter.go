package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a sliding-window request counter keyed by client address
type RateLimiter struct {
	requests map[string][]time.Time
	window   time.Duration
	limit    int
	message  string
	mutex    sync.Mutex
}

// NewRateLimiter creates a rate limiter allowing `limit` requests per
// `window` for each key, responding with `message` once exceeded
func NewRateLimiter(window time.Duration, limit int, message string) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
		message:  message,
	}

	// Drop keys that have gone quiet so the map does not grow unbounded
	go rl.cleanupStaleEntries()

	return rl
}

// Allow records a request for the key and reports whether it is within the window limit
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.window)

	// Keep only requests still inside the window
	var valid []time.Time
	for _, t := range rl.requests[key] {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}

	if len(valid) < rl.limit {
		valid = append(valid, now)
		rl.requests[key] = valid
		return true
	}

	rl.requests[key] = valid
	return false
}

// Middleware wraps the limiter as a gin handler keyed by client IP
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": rl.message,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-rl.window)

		for key, requests := range rl.requests {
			var valid []time.Time
			for _, t := range requests {
				if t.After(cutoff) {
					valid = append(valid, t)
				}
			}

			if len(valid) == 0 {
				delete(rl.requests, key)
			} else {
				rl.requests[key] = valid
			}
		}
		rl.mutex.Unlock()
	}
}
