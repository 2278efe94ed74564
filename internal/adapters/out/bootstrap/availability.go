// Package bootstrap makes sure the container engine is up before it is used,
// starting it with the host's service manager when allowed.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/bnema/zerowrap"
	"github.com/cenkalti/backoff/v4"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

// Config controls engine bootstrap.
type Config struct {
	// Enabled allows running the host start command when the engine is down.
	Enabled bool
	// Attempts is the number of pings after the start command.
	Attempts int
	// Interval is the fixed delay between pings.
	Interval time.Duration
	// MinAPIVersion is the oldest engine API accepted, e.g. "1.41". Empty disables the check.
	MinAPIVersion string
}

// DefaultConfig returns the bootstrap defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		Attempts:      10,
		Interval:      time.Second,
		MinAPIVersion: "1.41",
	}
}

// Availability implements the EngineAvailability interface.
type Availability struct {
	prober out.EngineProber
	host   domain.HostOS
	cfg    Config
}

// NewAvailability creates an engine availability check for host.
func NewAvailability(prober out.EngineProber, host domain.HostOS, cfg Config) *Availability {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	return &Availability{prober: prober, host: host, cfg: cfg}
}

// EnsureAvailable returns nil once the engine answers, starting it if needed.
func (a *Availability) EnsureAvailable(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "bootstrap",
		zerowrap.FieldAction:  "EnsureAvailable",
		"host_os":             a.host.String(),
	})
	log := zerowrap.FromCtx(ctx)

	pingErr := a.prober.Ping(ctx)
	if pingErr == nil {
		return a.checkVersion(ctx)
	}
	if !a.cfg.Enabled {
		return unreachable("engine is not running", pingErr)
	}

	cmd := a.host.EngineStartCommand()
	log.Info().Err(pingErr).Str("command", cmd.String()).Msg("engine not running, starting it")

	if err := runCommand(ctx, cmd); err != nil {
		return unreachable("engine is not running and could not be started", err)
	}

	attempt := 0
	op := func() error {
		attempt++
		err := a.prober.Ping(ctx)
		if err != nil {
			log.Debug().Int("attempt", attempt).Err(err).Msg("engine not ready yet")
		}
		return err
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(a.cfg.Interval), uint64(a.cfg.Attempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return unreachable("engine did not come up in time", err)
	}

	log.Info().Int("attempts", attempt).Msg("engine started")
	return a.checkVersion(ctx)
}

func (a *Availability) checkVersion(ctx context.Context) error {
	if a.cfg.MinAPIVersion == "" {
		return nil
	}

	raw, err := a.prober.ServerAPIVersion(ctx)
	if err != nil {
		return unreachable("failed to read engine API version", err)
	}

	current, err := semver.NewVersion(raw)
	if err != nil {
		return unreachable(fmt.Sprintf("engine reported invalid API version %q", raw), err)
	}
	floor, err := semver.NewVersion(a.cfg.MinAPIVersion)
	if err != nil {
		return fmt.Errorf("invalid minimum engine API version %q: %w", a.cfg.MinAPIVersion, err)
	}
	if current.LessThan(floor) {
		return fmt.Errorf("%w: engine API %s is older than required %s", domain.ErrEngineUnreachable, raw, a.cfg.MinAPIVersion)
	}
	return nil
}

func runCommand(ctx context.Context, cmd domain.Command) error {
	output, err := execCommandContext(ctx, cmd.Name, cmd.Args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return fmt.Errorf("%s: %w: %s", cmd, err, msg)
		}
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

func unreachable(msg string, err error) error {
	if errors.Is(err, domain.ErrEngineUnreachable) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrEngineUnreachable, msg, err)
}
