// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/atelier-crm/backend/internal/domain/error"
	"github.com/atelier-crm/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultLoginAttempts is how many attempts one IP gets per window.
	defaultLoginAttempts = 5
	defaultLoginWindow   = 1 * time.Minute
)

// window is a fixed rate-limit window for one client IP.
type window struct {
	count   int
	expires time.Time
}

// RateLimiter is a fixed-window, per-IP limiter for the login endpoint.
// Expired windows are swept lazily as requests come in.
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	span     time.Duration
	nextScan time.Time
}

// NewRateLimiter creates a limiter with the default login policy.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultLoginAttempts, defaultLoginWindow)
}

// NewRateLimiterWithConfig creates a limiter with a custom attempt budget
// and window length.
func NewRateLimiterWithConfig(limit int, span time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		span:    span,
	}
}

// Middleware returns the Gin handler enforcing the limit. Disabled under
// ENV=test so the integration suite can log in freely.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			ip = c.Request.RemoteAddr
		}

		if !rl.take(ip) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

// take records an attempt for the key and reports whether it is allowed.
func (rl *RateLimiter) take(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	w := rl.windows[key]
	if w == nil || now.After(w.expires) {
		rl.windows[key] = &window{count: 1, expires: now.Add(rl.span)}
		return true
	}
	if w.count >= rl.limit {
		return false
	}
	w.count++
	return true
}

// sweep drops expired windows at most once per span. Caller holds the lock.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Before(rl.nextScan) {
		return
	}
	rl.nextScan = now.Add(rl.span)
	for key, w := range rl.windows {
		if now.After(w.expires) {
			delete(rl.windows, key)
		}
	}
}

// Reset clears all windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*window)
}
