package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dockside/dockside/internal/adapters/in/http/api"
	"github.com/dockside/dockside/internal/adapters/out/ratelimit"
)

const (
	shutdownTimeout = 10 * time.Second
	pruneInterval   = time.Minute
)

// Run starts the HTTP bridge and blocks until ctx ends or SIGINT/SIGTERM.
func Run(ctx context.Context, configPath, version string) error {
	k, err := NewKernel(configPath, Options{})
	if err != nil {
		return err
	}
	defer func() { _ = k.Close() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Serve(k.Context(ctx), k, version)
}

// Serve runs the HTTP bridge of k until ctx ends.
func Serve(ctx context.Context, k *Kernel, version string) error {
	cfg := k.Config()
	log := k.Logger()

	handler := api.NewHandler(api.Deps{
		Acquisition: k.Acquisition(),
		System:      k.System(),
		Files:       k.Files(),
		Logs:        k.Logs(),
		Progress:    k.Broker(),
		Metrics:     k.Telemetry(),
		Engine:      k.Engine(),
		Topic:       cfg.Progress.Topic,
		Version:     version,
	})

	opts := api.ServerOptions{LocalOnly: !cfg.Server.AllowRemote}
	var limiter *ratelimit.ClientStore
	if cfg.Server.RateLimit.RPS > 0 {
		limiter = ratelimit.NewClientStore(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, log)
		opts.Limiter = limiter
	}
	e := api.NewServer(handler, log, opts)

	g, gctx := errgroup.WithContext(ctx)

	if limiter != nil {
		g.Go(func() error {
			limiter.Run(gctx, pruneInterval, ratelimit.DefaultIdleTTL)
			return nil
		})
	}

	g.Go(func() error {
		log.Info().Str("listen", cfg.Server.Listen).Str("version", version).Msg("HTTP bridge listening")
		if err := e.Start(cfg.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down HTTP bridge")

		// Closing the broker ends open event streams before the drain.
		k.Broker().Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
