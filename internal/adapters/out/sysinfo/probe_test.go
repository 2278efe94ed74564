package sysinfo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meminfoFixture = `MemTotal:       16384000 kB
MemFree:         1024000 kB
MemAvailable:    4096000 kB
Buffers:          204800 kB
SwapTotal:       2048000 kB
SwapFree:        1536000 kB
`

const cpuinfoFixture = `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz

processor	: 1
model name	: Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz
`

const osReleaseFixture = `PRETTY_NAME="Ubuntu 24.04 LTS"
NAME="Ubuntu"
VERSION_ID="24.04"
`

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func stubNvidia(t *testing.T, output string, fail bool) {
	t.Helper()
	orig := execCommandContext
	execCommandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if fail {
			return exec.CommandContext(ctx, "false")
		}
		return exec.CommandContext(ctx, "printf", "%s", output)
	}
	t.Cleanup(func() { execCommandContext = orig })
}

func TestParseMeminfo(t *testing.T) {
	m, err := parseMeminfo(strings.NewReader(meminfoFixture))
	require.NoError(t, err)

	assert.Equal(t, uint64(16384000*1024), m.total)
	assert.Equal(t, uint64((16384000-4096000)*1024), m.used())
	assert.Equal(t, uint64(2048000*1024), m.swapTotal)
	assert.Equal(t, uint64(512000*1024), m.swapUsed())
}

func TestParseMeminfo_FallsBackToMemFree(t *testing.T) {
	m, err := parseMeminfo(strings.NewReader("MemTotal: 100 kB\nMemFree: 40 kB\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(60*1024), m.used())
	assert.Zero(t, m.swapUsed())
}

func TestParseMeminfo_MissingTotal(t *testing.T) {
	_, err := parseMeminfo(strings.NewReader("MemFree: 40 kB\n"))
	assert.Error(t, err)
}

func TestParseCPUStat(t *testing.T) {
	stat := "cpu  100 0 100 700 100 0 0 0 0 0\ncpu0 50 0 50 350 50 0 0 0 0 0\nintr 1\n"
	times, err := parseCPUStat(strings.NewReader(stat))
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), times.total)
	assert.Equal(t, uint64(800), times.idle)

	_, err = parseCPUStat(strings.NewReader("intr 1\n"))
	assert.Error(t, err)
}

func TestBusyPercent(t *testing.T) {
	a := cpuTimes{idle: 800, total: 1000}
	b := cpuTimes{idle: 850, total: 1100}
	assert.InDelta(t, 50.0, busyPercent(a, b), 0.001)
	assert.Zero(t, busyPercent(b, a))
	assert.Zero(t, busyPercent(a, a))
}

func TestParseMounts(t *testing.T) {
	mounts := `sysfs /sys sysfs rw 0 0
/dev/nvme0n1p2 / ext4 rw 0 0
/dev/nvme0n1p1 /boot/efi vfat rw 0 0
/dev/nvme0n1p2 /var/lib/docker ext4 rw 0 0
/dev/sdb1 /media/usb\040drive vfat rw 0 0
tmpfs /run tmpfs rw 0 0
`
	got, err := parseMounts(strings.NewReader(mounts))
	require.NoError(t, err)
	assert.Equal(t, []mount{
		{device: "/dev/nvme0n1p2", mountPoint: "/"},
		{device: "/dev/nvme0n1p1", mountPoint: "/boot/efi"},
		{device: "/dev/sdb1", mountPoint: "/media/usb drive"},
	}, got)
}

func TestParseNvidia(t *testing.T) {
	name, usage, err := parseNvidia("NVIDIA GeForce RTX 3080, 37\nNVIDIA GeForce RTX 3080, 2\n")
	require.NoError(t, err)
	assert.Equal(t, "NVIDIA GeForce RTX 3080", name)
	assert.Equal(t, 37.0, usage)

	_, _, err = parseNvidia("garbage")
	assert.Error(t, err)
}

func TestProbe_SnapshotFromFixtures(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "proc/meminfo", meminfoFixture)
	writeFixture(t, root, "proc/stat", "cpu  100 0 100 700 100 0 0 0 0 0\n")
	writeFixture(t, root, "proc/cpuinfo", cpuinfoFixture)
	writeFixture(t, root, "etc/os-release", osReleaseFixture)
	writeFixture(t, root, "proc/mounts", "")
	stubNvidia(t, "NVIDIA A100, 12\n", false)

	p := New(Config{Root: root, CPUSampleInterval: time.Millisecond, GPU: true})
	snap, err := p.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(16384000*1024), snap.TotalMemory)
	assert.Equal(t, uint64(12288000*1024), snap.UsedMemory)
	assert.Equal(t, "Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz", snap.CPUName)
	assert.Equal(t, "Ubuntu", snap.SystemName)
	assert.Zero(t, snap.CPUUsage)
	assert.Empty(t, snap.Disks)
	require.NotNil(t, snap.GPUName)
	assert.Equal(t, "NVIDIA A100", *snap.GPUName)
	require.NotNil(t, snap.GPUUsage)
	assert.Equal(t, 12.0, *snap.GPUUsage)
}

func TestProbe_MissingSourcesUseDefaults(t *testing.T) {
	stubNvidia(t, "", true)

	p := New(Config{Root: t.TempDir(), CPUSampleInterval: time.Millisecond, GPU: true})
	snap, err := p.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, unknownCPU, snap.CPUName)
	assert.Equal(t, unknownOS, snap.SystemName)
	assert.Zero(t, snap.TotalMemory)
	assert.Nil(t, snap.GPUName)
	assert.Nil(t, snap.GPUUsage)
}

func TestProbe_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "proc/stat", "cpu  1 0 1 7 1 0 0 0 0 0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Config{Root: root, CPUSampleInterval: time.Hour})
	_, err := p.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
