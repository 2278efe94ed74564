// Package middleware provides echo middleware for the HTTP bridge.
package middleware

import (
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request and attaches the logger, tagged with the
// request ID, to the request context for downstream handlers.
func RequestLogger(log zerowrap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			ctx := zerowrap.WithCtx(req.Context(), log)
			ctx = zerowrap.CtxWithField(ctx, "request_id", requestID)
			c.SetRequest(req.WithContext(ctx))
			reqLog := zerowrap.FromCtx(ctx)

			if err := next(c); err != nil {
				c.Error(err)
			}

			reqLog.Info().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "http").
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Str("client_ip", c.RealIP()).
				Int("status", c.Response().Status).
				Int64("bytes", c.Response().Size).
				Dur(zerowrap.FieldDuration, time.Since(start)).
				Msg("HTTP request")
			return nil
		}
	}
}
