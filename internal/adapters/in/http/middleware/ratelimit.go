package middleware

import (
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dockside/dockside/internal/boundaries/out"
)

// RateLimit rejects requests over limiter's per-client budget with 429. A nil
// limiter lets everything through.
func RateLimit(limiter out.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			req := c.Request()
			if !limiter.Allow(req.Context(), "ip:"+remoteIP(req.RemoteAddr)) {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}

// remoteIP uses the connection address only. The bridge is not meant to sit
// behind a proxy, so forwarding headers are ignored.
func remoteIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
