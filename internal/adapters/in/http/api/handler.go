// Package api implements the HTTP bridge used by the desktop front end.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dockside/dockside/internal/adapters/in/http/middleware"
	"github.com/dockside/dockside/internal/adapters/out/progress"
	"github.com/dockside/dockside/internal/adapters/out/telemetry"
	"github.com/dockside/dockside/internal/boundaries/in"
	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

const (
	// maxRequestSize is the maximum allowed size for request bodies.
	maxRequestSize = "1M"

	defaultLogLines = 50
	maxLogLines     = 10000
)

// ProgressFeed publishes and streams progress topics.
type ProgressFeed interface {
	Sink(topic string) out.ProgressSink
	Subscribe(topic string) (*progress.Subscription, error)
}

// MetricsSource exposes the in-process metric snapshot.
type MetricsSource interface {
	Enabled() bool
	Snapshot(ctx context.Context) ([]telemetry.Point, error)
}

// Deps are the services behind the bridge. Metrics and Engine may be nil.
type Deps struct {
	Acquisition in.AcquisitionService
	System      in.SystemService
	Files       in.FileService
	Logs        in.LogService
	Progress    ProgressFeed
	Metrics     MetricsSource
	Engine      out.EngineProber
	Topic       string
	Version     string
}

// Handler implements the HTTP handlers of the bridge.
type Handler struct {
	deps  Deps
	limit echo.MiddlewareFunc
}

// NewHandler creates a new bridge handler.
func NewHandler(deps Deps) *Handler {
	if deps.Topic == "" {
		deps.Topic = domain.DefaultProgressTopic
	}
	return &Handler{deps: deps}
}

// ServerOptions tune the bridge's request filtering.
type ServerOptions struct {
	// LocalOnly rejects clients that are not on the loopback interface.
	LocalOnly bool
	// Limiter throttles the POST routes per client. Nil disables throttling.
	Limiter out.RateLimiter
}

// NewServer builds the echo instance serving h.
func NewServer(h *Handler, log zerowrap.Logger, opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))
	if opts.LocalOnly {
		e.Use(middleware.LocalOnly())
	}
	e.Use(echomw.BodyLimit(maxRequestSize))

	h.limit = middleware.RateLimit(opts.Limiter)
	h.RegisterRoutes(e.Group("/api"))
	return e
}

// RegisterRoutes registers the bridge routes on g.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	limit := h.limit
	if limit == nil {
		limit = middleware.RateLimit(nil)
	}

	g.POST("/containers/acquire", h.acquire, limit)
	g.POST("/containers/copy", h.copyFromContainer, limit)
	g.GET("/events/:topic", h.events)
	g.GET("/system", h.system)
	g.POST("/files/read", h.readFile, limit)
	g.POST("/log", h.logMessage, limit)
	g.GET("/logs", h.processLogs)
	g.GET("/metrics", h.metrics)
	g.GET("/health", h.health)
}

type errorResponse struct {
	Error string           `json:"error"`
	Kind  domain.ErrorKind `json:"kind"`
}

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidImageReference:
		return http.StatusBadRequest
	case domain.KindEngineUnreachable:
		return http.StatusServiceUnavailable
	case domain.KindFileNotFound:
		return http.StatusNotFound
	case domain.KindEngineOperationFailed, domain.KindPullFailed, domain.KindCreateFailed, domain.KindStartFailed:
		return http.StatusBadGateway
	}
	if errors.Is(err, fs.ErrNotExist) {
		return http.StatusNotFound
	}
	if errors.Is(err, context.Canceled) {
		return 499
	}
	return http.StatusInternalServerError
}

func sendError(c echo.Context, err error) error {
	return c.JSON(statusFor(err), errorResponse{Error: err.Error(), Kind: domain.KindOf(err)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Kind: domain.KindUnknown})
}

func (h *Handler) ctx(c echo.Context, handler string) context.Context {
	return zerowrap.CtxWithFields(c.Request().Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: handler,
	})
}

type acquireRequest struct {
	Image string `json:"image"`
	Topic string `json:"topic,omitempty"`
}

type acquireResponse struct {
	ContainerID string `json:"container_id"`
}

func (h *Handler) acquire(c echo.Context) error {
	ctx := h.ctx(c, "acquire")

	var req acquireRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	topic := req.Topic
	if topic == "" {
		topic = h.deps.Topic
	}

	id, err := h.deps.Acquisition.Acquire(ctx, domain.ImageReference(req.Image), h.deps.Progress.Sink(topic))
	if err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str("image", req.Image).Msg("acquisition failed")
		return sendError(c, err)
	}
	return c.JSON(http.StatusOK, acquireResponse{ContainerID: id})
}

// events streams one topic as Server-Sent Events until the client leaves.
func (h *Handler) events(c echo.Context) error {
	ctx := h.ctx(c, "events")
	topic := c.Param("topic")

	sub, err := h.deps.Progress.Subscribe(topic)
	if err != nil {
		if errors.Is(err, progress.ErrUnknownTopic) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error(), Kind: domain.KindUnknown})
		}
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error(), Kind: domain.KindUnknown})
	}
	defer sub.Close()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case update, ok := <-sub.C:
			if !ok {
				return nil
			}
			data, err := json.Marshal(update)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", topic, data); err != nil {
				log := zerowrap.FromCtx(ctx)
				log.Debug().Err(err).Msg("event client went away")
				return nil
			}
			w.Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Handler) system(c echo.Context) error {
	snap, err := h.deps.System.Snapshot(h.ctx(c, "system"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}

type readFileRequest struct {
	Path string `json:"path"`
}

type readFileResponse struct {
	Data string `json:"data"`
}

func (h *Handler) readFile(c echo.Context) error {
	var req readFileRequest
	if err := c.Bind(&req); err != nil || req.Path == "" {
		return badRequest(c, "path is required")
	}

	data, err := h.deps.Files.ReadBase64(h.ctx(c, "readFile"), req.Path)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(http.StatusOK, readFileResponse{Data: data})
}

type copyRequest struct {
	ContainerName string `json:"container_name"`
	ContainerPath string `json:"container_path"`
}

type copyResponse struct {
	Path string `json:"path"`
}

func (h *Handler) copyFromContainer(c echo.Context) error {
	var req copyRequest
	if err := c.Bind(&req); err != nil || req.ContainerName == "" || req.ContainerPath == "" {
		return badRequest(c, "container_name and container_path are required")
	}

	path, err := h.deps.Files.CopyFromContainer(h.ctx(c, "copyFromContainer"), req.ContainerName, req.ContainerPath)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(http.StatusOK, copyResponse{Path: path})
}

type logRequest struct {
	Message string `json:"message"`
}

func (h *Handler) logMessage(c echo.Context) error {
	var req logRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.deps.Logs.Log(h.ctx(c, "log"), req.Message); err != nil {
		return sendError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// processLogs returns the last lines of the process log, or streams it as
// Server-Sent Events with follow=true.
func (h *Handler) processLogs(c echo.Context) error {
	ctx := h.ctx(c, "processLogs")

	lines := defaultLogLines
	if s := c.QueryParam("lines"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			lines = n
		}
	}
	if lines > maxLogLines {
		lines = maxLogLines
	}

	if c.QueryParam("follow") != "true" {
		logLines, err := h.deps.Logs.GetProcessLogs(ctx, lines)
		if err != nil {
			return sendError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"lines": logLines})
	}

	ch, err := h.deps.Logs.FollowProcessLogs(ctx, lines)
	if err != nil {
		return sendError(c, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case line, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", line); err != nil {
				return nil
			}
			w.Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Handler) metrics(c echo.Context) error {
	if h.deps.Metrics == nil || !h.deps.Metrics.Enabled() {
		return c.JSON(http.StatusOK, map[string]any{"enabled": false, "points": []telemetry.Point{}})
	}

	points, err := h.deps.Metrics.Snapshot(h.ctx(c, "metrics"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"enabled": true, "points": points})
}

type healthResponse struct {
	Status  string `json:"status"`
	Engine  string `json:"engine"`
	Version string `json:"version,omitempty"`
}

func (h *Handler) health(c echo.Context) error {
	resp := healthResponse{Status: "ok", Engine: "unknown", Version: h.deps.Version}
	if h.deps.Engine != nil {
		if err := h.deps.Engine.Ping(h.ctx(c, "health")); err != nil {
			resp.Status = "degraded"
			resp.Engine = "down"
		} else {
			resp.Engine = "up"
		}
	}
	return c.JSON(http.StatusOK, resp)
}
