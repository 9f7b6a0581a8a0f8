package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type window struct {
	count int
	start time.Time
}

type ipLimiter struct {
	mu      sync.Mutex
	limit   int
	span    time.Duration
	windows map[string]*window
}

func (l *ipLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[ip]
	if !ok || now.Sub(w.start) > l.span {
		l.windows[ip] = &window{count: 1, start: now}
		l.prune(now)
		return true
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// prune drops windows whose span has elapsed so the map does not grow
// with every client IP ever seen. Called with the lock held.
func (l *ipLimiter) prune(now time.Time) {
	for ip, w := range l.windows {
		if now.Sub(w.start) > l.span {
			delete(l.windows, ip)
		}
	}
}

// RateLimiter rejects requests beyond limit per window per client IP.
func RateLimiter(limit int, span time.Duration) echo.MiddlewareFunc {
	l := &ipLimiter{
		limit:   limit,
		span:    span,
		windows: make(map[string]*window),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !l.allow(c.RealIP(), time.Now()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
