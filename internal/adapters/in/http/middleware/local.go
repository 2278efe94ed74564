package middleware

import (
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
)

// IsLoopback reports whether remoteAddr ("host:port") is a loopback address.
// RemoteAddr is set by the server, unlike the Host header.
func IsLoopback(remoteAddr string) bool {
	ip := net.ParseIP(remoteIP(remoteAddr))
	return ip != nil && ip.IsLoopback()
}

// LocalOnly rejects requests that do not come from the local machine.
func LocalOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsLoopback(c.Request().RemoteAddr) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "local clients only"})
			}
			return next(c)
		}
	}
}
