package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/app"
	"github.com/dockside/dockside/internal/boundaries/in"
	inmocks "github.com/dockside/dockside/internal/boundaries/in/mocks"
	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

type fakeControlPlane struct {
	acquisition *inmocks.MockAcquisitionService
	system      *inmocks.MockSystemService
	files       *inmocks.MockFileService
	logs        *inmocks.MockLogService

	opts   app.Options
	closed bool
}

func (f *fakeControlPlane) Acquisition() in.AcquisitionService          { return f.acquisition }
func (f *fakeControlPlane) System() in.SystemService                    { return f.system }
func (f *fakeControlPlane) Files() in.FileService                       { return f.files }
func (f *fakeControlPlane) Logs() in.LogService                         { return f.logs }
func (f *fakeControlPlane) Context(ctx context.Context) context.Context { return ctx }
func (f *fakeControlPlane) Close() error {
	f.closed = true
	return nil
}

func useFakeControlPlane(t *testing.T) *fakeControlPlane {
	t.Helper()
	fake := &fakeControlPlane{
		acquisition: inmocks.NewMockAcquisitionService(t),
		system:      inmocks.NewMockSystemService(t),
		files:       inmocks.NewMockFileService(t),
		logs:        inmocks.NewMockLogService(t),
	}

	origCP, origTTY := newControlPlane, isTerminal
	newControlPlane = func(_ string, opts app.Options) (ControlPlane, error) {
		fake.opts = opts
		return fake, nil
	}
	isTerminal = func(io.Writer) bool { return false }
	t.Cleanup(func() {
		newControlPlane = origCP
		isTerminal = origTTY
	})
	return fake
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "acquire", "name", "sysinfo", "cp", "readfile", "log", "version"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestVersionCmd_Short(t *testing.T) {
	origV, origC, origD := Version, Commit, BuildDate
	t.Cleanup(func() { SetVersionInfo(origV, origC, origD) })
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")

	got, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", got)

	got, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, got, "1.2.3")
	assert.Contains(t, got, "abc123")
	assert.Contains(t, got, "2026-01-01")
}

func TestServeCmd_RunsServer(t *testing.T) {
	orig := runServer
	t.Cleanup(func() { runServer = orig })

	var gotPath, gotVersion string
	runServer = func(_ context.Context, configPath, version string) error {
		gotPath, gotVersion = configPath, version
		return nil
	}

	_, err := execute(t, "serve", "--config", "/etc/dockside/dockside.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/dockside/dockside.yaml", gotPath)
	assert.Equal(t, Version, gotVersion)
}

func TestNameCmd(t *testing.T) {
	got, err := execute(t, "name", "ghcr.io/acme/bg-remove:1.2")
	require.NoError(t, err)
	assert.Equal(t, "ghcr.io_acme_bg-remove_1.2_container\n", got)

	_, err = execute(t, "name", "UPPER/Case:x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidImageReference))
}

func TestAcquireCmd_Plain(t *testing.T) {
	fake := useFakeControlPlane(t)

	fake.acquisition.EXPECT().
		Acquire(mock.Anything, domain.ImageReference("nginx:latest"), mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.ImageReference, sink out.ProgressSink) (string, error) {
			require.NoError(t, sink.Emit(ctx, domain.ProgressUpdate{Message: domain.MsgCheckingExisting, Percentage: domain.ProgressChecking}))
			require.NoError(t, sink.Emit(ctx, domain.ProgressUpdate{Message: domain.MsgReady, Percentage: domain.ProgressReady}))
			return "0123456789abcdef", nil
		})

	got, err := execute(t, "acquire", "nginx:latest")
	require.NoError(t, err)
	assert.Contains(t, got, "[  0%] "+domain.MsgCheckingExisting+"\n")
	assert.Contains(t, got, "[100%] "+domain.MsgReady+"\n")
	assert.Contains(t, got, "nginx_latest_container (0123456789ab)")
	assert.True(t, fake.closed)
	assert.Empty(t, fake.opts.LogLevel)
}

func TestAcquireCmd_Error(t *testing.T) {
	fake := useFakeControlPlane(t)

	fake.acquisition.EXPECT().
		Acquire(mock.Anything, domain.ImageReference("nginx:latest"), mock.Anything).
		Return("", domain.ErrPullFailed)

	_, err := execute(t, "acquire", "nginx:latest", "--plain")
	require.ErrorIs(t, err, domain.ErrPullFailed)
	assert.True(t, fake.closed)
}

func TestAcquireCmd_RequiresImage(t *testing.T) {
	useFakeControlPlane(t)

	_, err := execute(t, "acquire")
	assert.Error(t, err)
}

func TestSysinfoCmd(t *testing.T) {
	gpu := "RTX 4090"
	gpuUsage := 12.0
	snap := domain.SystemSnapshot{
		TotalMemory: 16_000_000_000,
		UsedMemory:  4_000_000_000,
		CPUUsage:    7.5,
		CPUName:     "Ryzen 9",
		Disks:       []domain.DiskInfo{{Name: "/dev/nvme0n1p2", TotalSpace: 1000, AvailableSpace: 250}},
		GPUName:     &gpu,
		GPUUsage:    &gpuUsage,
		SystemName:  "Arch Linux",
	}

	t.Run("text", func(t *testing.T) {
		fake := useFakeControlPlane(t)
		fake.system.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

		got, err := execute(t, "sysinfo")
		require.NoError(t, err)
		assert.Contains(t, got, "Arch Linux")
		assert.Contains(t, got, "Ryzen 9 (7.5%)")
		assert.Contains(t, got, "RTX 4090 (12%)")
		assert.Contains(t, got, "/dev/nvme0n1p2")
		assert.Contains(t, got, "75%")
	})

	t.Run("json", func(t *testing.T) {
		fake := useFakeControlPlane(t)
		fake.system.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

		got, err := execute(t, "sysinfo", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, got, `"cpu_name": "Ryzen 9"`)
		assert.Contains(t, got, `"disk_space": [`)
	})

	t.Run("yaml", func(t *testing.T) {
		fake := useFakeControlPlane(t)
		fake.system.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

		got, err := execute(t, "sysinfo", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, got, "system_name: Arch Linux")
		assert.Contains(t, got, "gpu_name: RTX 4090")
	})

	t.Run("bad format", func(t *testing.T) {
		useFakeControlPlane(t)

		_, err := execute(t, "sysinfo", "-o", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})
}

func TestCopyCmd(t *testing.T) {
	fake := useFakeControlPlane(t)
	fake.files.EXPECT().
		CopyFromContainer(mock.Anything, "nginx_latest_container", "/app/out/result.png").
		Return("/tmp/result.png", nil)

	got, err := execute(t, "cp", "nginx_latest_container", "/app/out/result.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/result.png\n", got)
}

func TestReadFileCmd(t *testing.T) {
	fake := useFakeControlPlane(t)
	fake.files.EXPECT().ReadBase64(mock.Anything, "/tmp/a.txt").Return("aGVsbG8=", nil)

	got, err := execute(t, "readfile", "/tmp/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=\n", got)
}

func TestReadFileCmd_Error(t *testing.T) {
	fake := useFakeControlPlane(t)
	fake.files.EXPECT().ReadBase64(mock.Anything, "/missing").Return("", domain.ErrFileNotFound)

	_, err := execute(t, "readfile", "/missing")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestLogCmd_Message(t *testing.T) {
	fake := useFakeControlPlane(t)
	fake.logs.EXPECT().Log(mock.Anything, "model loaded in 3s").Return(nil)

	_, err := execute(t, "log", "model", "loaded", "in", "3s")
	require.NoError(t, err)
	assert.NotNil(t, fake.opts.MessageOutput)
}

func TestLogCmd_Tail(t *testing.T) {
	fake := useFakeControlPlane(t)
	fake.logs.EXPECT().GetProcessLogs(mock.Anything, 2).Return([]string{"one", "two"}, nil)

	got, err := execute(t, "log", "--tail", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", got)
}

func TestLogCmd_Follow(t *testing.T) {
	fake := useFakeControlPlane(t)
	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)
	fake.logs.EXPECT().FollowProcessLogs(mock.Anything, 50).Return((<-chan string)(ch), nil)

	got, err := execute(t, "log", "--tail", "--follow")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", got)
}

func TestLogCmd_NoArgsShowsHelp(t *testing.T) {
	useFakeControlPlane(t)

	got, err := execute(t, "log")
	require.NoError(t, err)
	assert.Contains(t, got, "Usage:")
}
