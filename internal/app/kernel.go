package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/bnema/zerowrap"

	"github.com/dockside/dockside/internal/adapters/out/bootstrap"
	"github.com/dockside/dockside/internal/adapters/out/console"
	"github.com/dockside/dockside/internal/adapters/out/docker"
	"github.com/dockside/dockside/internal/adapters/out/flocker"
	"github.com/dockside/dockside/internal/adapters/out/progress"
	"github.com/dockside/dockside/internal/adapters/out/sysinfo"
	"github.com/dockside/dockside/internal/adapters/out/telemetry"
	"github.com/dockside/dockside/internal/boundaries/in"
	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
	"github.com/dockside/dockside/internal/usecase/acquire"
	"github.com/dockside/dockside/internal/usecase/files"
	"github.com/dockside/dockside/internal/usecase/logs"
	"github.com/dockside/dockside/internal/usecase/system"
)

// Options tune a kernel. Zero values keep the configured log level and write
// operator messages to stdout.
type Options struct {
	// LogLevel overrides logging.level when set.
	LogLevel      string
	MessageOutput io.Writer
}

// Kernel wires every service of the process. It does not start listeners
// or register signal handlers.
type Kernel struct {
	cfg Config
	log zerowrap.Logger

	engine    *docker.Engine
	broker    *progress.Broker
	telemetry *telemetry.Provider
	metrics   *telemetry.Metrics

	acquireSvc *acquire.Service
	systemSvc  *system.Service
	fileSvc    *files.Service
	logSvc     *logs.Service

	cleanup []func() error
}

// NewKernel loads configuration and initializes local services.
func NewKernel(configPath string, opts Options) (*Kernel, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewKernelWithConfig(cfg, opts)
}

// NewKernelWithConfig initializes local services from cfg.
func NewKernelWithConfig(cfg Config, opts Options) (*Kernel, error) {
	if opts.MessageOutput == nil {
		opts.MessageOutput = os.Stdout
	}

	log, logCleanup, err := initLogger(cfg, opts.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	k := &Kernel{cfg: cfg, log: log}
	k.cleanup = append(k.cleanup, func() error { logCleanup(); return nil })

	if err := k.wire(opts); err != nil {
		_ = k.Close()
		return nil, err
	}
	return k, nil
}

func (k *Kernel) wire(opts Options) error {
	cfg := k.cfg

	host, err := domain.ParseHostOS(runtime.GOOS)
	if err != nil {
		return err
	}

	k.telemetry = telemetry.NewProvider(cfg.Telemetry)
	k.cleanup = append(k.cleanup, func() error { return k.telemetry.Shutdown(context.Background()) })

	k.metrics, err = telemetry.NewMetrics(k.telemetry.Meters())
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	k.engine, err = docker.NewEngine(cfg.Engine.Host)
	if err != nil {
		return err
	}
	k.cleanup = append(k.cleanup, k.engine.Close)

	k.broker = progress.NewBroker(cfg.Progress.Buffer, k.log, cfg.Progress.Topic)
	k.broker.SetMetrics(k.metrics)
	k.cleanup = append(k.cleanup, func() error { k.broker.Close(); return nil })

	locker, err := flocker.New(cfg.LockDir())
	if err != nil {
		return err
	}

	availability := bootstrap.NewAvailability(k.engine, host, bootstrap.Config{
		Enabled:       cfg.Engine.Bootstrap,
		Attempts:      cfg.Engine.BootstrapAttempts,
		Interval:      cfg.Engine.BootstrapInterval,
		MinAPIVersion: cfg.Engine.MinAPIVersion,
	})

	k.acquireSvc = acquire.NewService(k.engine, availability, locker, k.metrics)
	k.systemSvc = system.NewService(sysinfo.New(sysinfo.Config{
		CPUSampleInterval: cfg.System.CPUSample,
		GPU:               cfg.System.GPU,
	}))
	k.fileSvc = files.NewService(k.engine, cfg.Files.TempDir)
	k.logSvc = logs.NewService(cfg.LogFilePath(), console.NewWriter(opts.MessageOutput))

	k.log.Debug().
		Str(zerowrap.FieldComponent, "kernel").
		Str("host_os", host.String()).
		Str("topic", cfg.Progress.Topic).
		Bool("metrics", k.telemetry.Enabled()).
		Msg("services wired")
	return nil
}

// Close releases every resource in reverse creation order.
func (k *Kernel) Close() error {
	if k == nil {
		return nil
	}
	var errs []error
	for i := len(k.cleanup) - 1; i >= 0; i-- {
		if err := k.cleanup[i](); err != nil {
			errs = append(errs, err)
		}
	}
	k.cleanup = nil
	return errors.Join(errs...)
}

// Context returns ctx carrying the kernel logger.
func (k *Kernel) Context(ctx context.Context) context.Context {
	return zerowrap.WithCtx(ctx, k.log)
}

func (k *Kernel) Config() Config { return k.cfg }

func (k *Kernel) Logger() zerowrap.Logger { return k.log }

func (k *Kernel) Acquisition() in.AcquisitionService { return k.acquireSvc }

func (k *Kernel) System() in.SystemService { return k.systemSvc }

func (k *Kernel) Files() in.FileService { return k.fileSvc }

func (k *Kernel) Logs() in.LogService { return k.logSvc }

func (k *Kernel) Engine() out.EngineProber { return k.engine }

func (k *Kernel) Broker() *progress.Broker { return k.broker }

func (k *Kernel) Telemetry() *telemetry.Provider { return k.telemetry }
