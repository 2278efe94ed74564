package bootstrap

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/boundaries/out/mocks"
	"github.com/dockside/dockside/internal/domain"
)

var errRefused = errors.New("connection refused")

// stubExec replaces the command runner for the test and records what was run.
func stubExec(t *testing.T, succeed bool) *[]string {
	t.Helper()
	var ran []string
	orig := execCommandContext
	execCommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		ran = append(ran, name)
		if succeed {
			return exec.CommandContext(ctx, "true")
		}
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { execCommandContext = orig })
	return &ran
}

func testConfig() Config {
	return Config{Enabled: true, Attempts: 3, Interval: time.Millisecond, MinAPIVersion: "1.41"}
}

func TestAvailability_AlreadyRunning(t *testing.T) {
	prober := mocks.NewMockEngineProber(t)
	ran := stubExec(t, true)

	prober.EXPECT().Ping(mock.Anything).Return(nil).Once()
	prober.EXPECT().ServerAPIVersion(mock.Anything).Return("1.47", nil).Once()

	a := NewAvailability(prober, domain.HostLinux, testConfig())

	require.NoError(t, a.EnsureAvailable(context.Background()))
	assert.Empty(t, *ran)
}

func TestAvailability_StartsEngine(t *testing.T) {
	prober := mocks.NewMockEngineProber(t)
	ran := stubExec(t, true)

	prober.EXPECT().Ping(mock.Anything).Return(errRefused).Once()
	prober.EXPECT().Ping(mock.Anything).Return(errRefused).Once()
	prober.EXPECT().Ping(mock.Anything).Return(nil).Once()
	prober.EXPECT().ServerAPIVersion(mock.Anything).Return("1.45", nil).Once()

	a := NewAvailability(prober, domain.HostLinux, testConfig())

	require.NoError(t, a.EnsureAvailable(context.Background()))
	assert.Equal(t, []string{"systemctl"}, *ran)
}

func TestAvailability_StartCommandPerHost(t *testing.T) {
	for host, want := range map[domain.HostOS]string{
		domain.HostLinux:   "systemctl",
		domain.HostMacOS:   "open",
		domain.HostWindows: "powershell",
	} {
		t.Run(host.String(), func(t *testing.T) {
			prober := mocks.NewMockEngineProber(t)
			ran := stubExec(t, true)

			prober.EXPECT().Ping(mock.Anything).Return(errRefused).Once()
			prober.EXPECT().Ping(mock.Anything).Return(nil).Once()

			cfg := testConfig()
			cfg.MinAPIVersion = ""
			a := NewAvailability(prober, host, cfg)

			require.NoError(t, a.EnsureAvailable(context.Background()))
			assert.Equal(t, []string{want}, *ran)
		})
	}
}

func TestAvailability_StartCommandFails(t *testing.T) {
	prober := mocks.NewMockEngineProber(t)
	stubExec(t, false)

	prober.EXPECT().Ping(mock.Anything).Return(errRefused).Once()

	a := NewAvailability(prober, domain.HostLinux, testConfig())

	err := a.EnsureAvailable(context.Background())
	assert.ErrorIs(t, err, domain.ErrEngineUnreachable)
	assert.Contains(t, err.Error(), "could not be started")
}

func TestAvailability_GivesUpAfterAttempts(t *testing.T) {
	prober := mocks.NewMockEngineProber(t)
	stubExec(t, true)

	// One initial ping plus three polls.
	prober.EXPECT().Ping(mock.Anything).Return(errRefused).Times(4)

	a := NewAvailability(prober, domain.HostLinux, testConfig())

	err := a.EnsureAvailable(context.Background())
	assert.ErrorIs(t, err, domain.ErrEngineUnreachable)
	assert.Contains(t, err.Error(), "did not come up in time")
}

func TestAvailability_BootstrapDisabled(t *testing.T) {
	prober := mocks.NewMockEngineProber(t)
	ran := stubExec(t, true)

	prober.EXPECT().Ping(mock.Anything).Return(errRefused).Once()

	cfg := testConfig()
	cfg.Enabled = false
	a := NewAvailability(prober, domain.HostLinux, cfg)

	err := a.EnsureAvailable(context.Background())
	assert.ErrorIs(t, err, domain.ErrEngineUnreachable)
	assert.ErrorIs(t, err, errRefused)
	assert.Empty(t, *ran)
}

func TestAvailability_APIVersionFloor(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"newer", "1.48", false},
		{"equal", "1.41", false},
		{"older", "1.40", true},
		{"garbage", "not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := mocks.NewMockEngineProber(t)
			prober.EXPECT().Ping(mock.Anything).Return(nil).Once()
			prober.EXPECT().ServerAPIVersion(mock.Anything).Return(tt.version, nil).Once()

			a := NewAvailability(prober, domain.HostLinux, testConfig())

			err := a.EnsureAvailable(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrEngineUnreachable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
