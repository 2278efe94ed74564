package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/adapters/out/ratelimit"
)

func TestIsLoopback(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       bool
	}{
		{"ipv4 loopback", "127.0.0.1:12345", true},
		{"ipv4 loopback other", "127.0.0.2:9000", true},
		{"ipv6 loopback bracketed", "[::1]:12345", true},
		{"external ipv4", "192.168.1.1:12345", false},
		{"external ipv6", "[2001:db8::1]:12345", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLoopback(tt.remoteAddr))
		})
	}
}

func TestLocalOnly(t *testing.T) {
	e := echo.New()
	e.Use(LocalOnly())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.8:5555"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(zerowrap.Default()))

	var ctxLogged bool
	e.GET("/api/health", func(c echo.Context) error {
		log := zerowrap.FromCtx(c.Request().Context())
		log.Debug().Msg("inside")
		ctxLogged = true
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health?x=1", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.True(t, ctxLogged)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLogger_ErrorsAreRendered(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger(zerowrap.Default()))
	e.GET("/", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(ratelimit.NewClientStore(0.001, 2, zerowrap.Default())))
	e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, do("127.0.0.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, do("127.0.0.1:1001").Code)

	rec := do("127.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")

	assert.Equal(t, http.StatusNoContent, do("[::1]:1000").Code)
}

func TestRateLimit_NilLimiter(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(nil))
	e.POST("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for range 5 {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
