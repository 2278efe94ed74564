// Package sysinfo reads host resource usage from procfs, statfs and the
// vendor GPU tools.
package sysinfo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// execCommandContext is a variable to allow mocking in tests
var execCommandContext = exec.CommandContext

const (
	unknownCPU = "Unknown CPU"
	unknownOS  = "Unknown OS"
)

// Config controls the probe.
type Config struct {
	// Root is prepended to /proc and /etc paths. Empty means "/".
	Root string
	// CPUSampleInterval is the gap between the two /proc/stat reads.
	CPUSampleInterval time.Duration
	// GPU enables querying nvidia-smi for the GPU name and usage.
	GPU bool
}

var _ out.SystemProbe = (*Probe)(nil)

// Probe implements the SystemProbe interface.
type Probe struct {
	root     string
	interval time.Duration
	gpu      bool
}

// New creates a Probe.
func New(cfg Config) *Probe {
	if cfg.Root == "" {
		cfg.Root = "/"
	}
	if cfg.CPUSampleInterval <= 0 {
		cfg.CPUSampleInterval = 200 * time.Millisecond
	}
	return &Probe{root: cfg.Root, interval: cfg.CPUSampleInterval, gpu: cfg.GPU}
}

// Snapshot reads every metric it can. Missing sources leave their fields at
// zero values; only a cancelled context is an error.
func (p *Probe) Snapshot(ctx context.Context) (domain.SystemSnapshot, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "sysinfo",
	})
	log := zerowrap.FromCtx(ctx)

	snap := domain.SystemSnapshot{
		CPUName:    unknownCPU,
		SystemName: unknownOS,
	}

	if mem, err := p.readMeminfo(); err != nil {
		log.Debug().Err(err).Msg("memory info unavailable")
	} else {
		snap.TotalMemory = mem.total
		snap.UsedMemory = mem.used()
		snap.TotalSwap = mem.swapTotal
		snap.UsedSwap = mem.swapUsed()
	}

	usage, err := p.cpuUsage(ctx)
	switch {
	case ctx.Err() != nil:
		return domain.SystemSnapshot{}, ctx.Err()
	case err != nil:
		log.Debug().Err(err).Msg("cpu usage unavailable")
	default:
		snap.CPUUsage = usage
	}

	if name, err := p.cpuName(); err != nil {
		log.Debug().Err(err).Msg("cpu name unavailable")
	} else if name != "" {
		snap.CPUName = name
	}

	if name, err := p.osName(); err != nil {
		log.Debug().Err(err).Msg("os name unavailable")
	} else if name != "" {
		snap.SystemName = name
	}

	disks, err := p.disks()
	if err != nil {
		log.Debug().Err(err).Msg("disk info unavailable")
	}
	snap.Disks = disks

	if p.gpu {
		if name, usage, err := queryNvidia(ctx); err != nil {
			log.Debug().Err(err).Msg("gpu info unavailable")
		} else {
			snap.GPUName = &name
			snap.GPUUsage = &usage
		}
	}

	return snap, nil
}

func (p *Probe) path(parts ...string) string {
	return filepath.Join(append([]string{p.root}, parts...)...)
}

type meminfo struct {
	total     uint64
	available uint64
	free      uint64
	swapTotal uint64
	swapFree  uint64
}

func (m meminfo) used() uint64 {
	avail := m.available
	if avail == 0 {
		avail = m.free
	}
	if avail > m.total {
		return 0
	}
	return m.total - avail
}

func (m meminfo) swapUsed() uint64 {
	if m.swapFree > m.swapTotal {
		return 0
	}
	return m.swapTotal - m.swapFree
}

func (p *Probe) readMeminfo() (meminfo, error) {
	f, err := os.Open(p.path("proc", "meminfo"))
	if err != nil {
		return meminfo{}, err
	}
	defer f.Close()
	return parseMeminfo(f)
}

// parseMeminfo reads the kB values of /proc/meminfo into bytes.
func parseMeminfo(r io.Reader) (meminfo, error) {
	var m meminfo
	found := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		// Format: "MemTotal:       16384000 kB"
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		var dst *uint64
		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			dst = &m.total
			found = true
		case "MemAvailable":
			dst = &m.available
		case "MemFree":
			dst = &m.free
		case "SwapTotal":
			dst = &m.swapTotal
		case "SwapFree":
			dst = &m.swapFree
		default:
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return meminfo{}, fmt.Errorf("parse %s: %w", fields[0], err)
		}
		*dst = kb * 1024
	}
	if err := scanner.Err(); err != nil {
		return meminfo{}, err
	}
	if !found {
		return meminfo{}, errors.New("MemTotal not found in meminfo")
	}
	return m, nil
}

type cpuTimes struct {
	idle  uint64
	total uint64
}

// parseCPUStat reads the aggregate "cpu" line of /proc/stat.
func parseCPUStat(r io.Reader) (cpuTimes, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}
		var t cpuTimes
		for i, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 10, 64)
			if err != nil {
				return cpuTimes{}, fmt.Errorf("parse cpu field %d: %w", i, err)
			}
			t.total += v
			// idle and iowait
			if i == 3 || i == 4 {
				t.idle += v
			}
		}
		return t, nil
	}
	if err := scanner.Err(); err != nil {
		return cpuTimes{}, err
	}
	return cpuTimes{}, errors.New("cpu line not found in stat")
}

// busyPercent returns the busy share between two samples, in percent.
func busyPercent(a, b cpuTimes) float64 {
	if b.total <= a.total {
		return 0
	}
	total := float64(b.total - a.total)
	idle := float64(b.idle - a.idle)
	if b.idle < a.idle {
		idle = 0
	}
	pct := (total - idle) / total * 100
	if pct < 0 {
		return 0
	}
	return pct
}

func (p *Probe) readCPUStat() (cpuTimes, error) {
	f, err := os.Open(p.path("proc", "stat"))
	if err != nil {
		return cpuTimes{}, err
	}
	defer f.Close()
	return parseCPUStat(f)
}

func (p *Probe) cpuUsage(ctx context.Context) (float64, error) {
	first, err := p.readCPUStat()
	if err != nil {
		return 0, err
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	second, err := p.readCPUStat()
	if err != nil {
		return 0, err
	}
	return busyPercent(first, second), nil
}

func (p *Probe) cpuName() (string, error) {
	f, err := os.Open(p.path("proc", "cpuinfo"))
	if err != nil {
		return "", err
	}
	defer f.Close()
	return parseKeyValue(f, ":", "model name", "Hardware", "Processor")
}

func (p *Probe) osName() (string, error) {
	f, err := os.Open(p.path("etc", "os-release"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	name, err := parseKeyValue(f, "=", "NAME")
	return strings.Trim(name, `"'`), err
}

// parseKeyValue returns the value of the first line whose key matches one of
// keys, in key order of preference.
func parseKeyValue(r io.Reader, sep string, keys ...string) (string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), sep)
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if _, seen := values[k]; !seen {
			values[k] = strings.TrimSpace(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	for _, k := range keys {
		if v := values[k]; v != "" {
			return v, nil
		}
	}
	return "", nil
}

type mount struct {
	device     string
	mountPoint string
}

// parseMounts returns block-device mounts, one per device.
func parseMounts(r io.Reader) ([]mount, error) {
	var mounts []mount
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		if seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		// Octal escapes such as \040 for spaces.
		mp, err := strconv.Unquote(`"` + fields[1] + `"`)
		if err != nil {
			mp = fields[1]
		}
		mounts = append(mounts, mount{device: fields[0], mountPoint: mp})
	}
	return mounts, scanner.Err()
}

func (p *Probe) disks() ([]domain.DiskInfo, error) {
	f, err := os.Open(p.path("proc", "mounts"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mounts, err := parseMounts(f)
	if err != nil {
		return nil, err
	}

	disks := make([]domain.DiskInfo, 0, len(mounts))
	for _, m := range mounts {
		total, avail, err := statDisk(m.mountPoint)
		if err != nil {
			continue
		}
		disks = append(disks, domain.DiskInfo{
			Name:           filepath.Base(m.device),
			TotalSpace:     total,
			AvailableSpace: avail,
		})
	}
	return disks, nil
}

// queryNvidia reads the first GPU's name and utilization from nvidia-smi.
func queryNvidia(ctx context.Context) (string, float64, error) {
	cmd := execCommandContext(ctx, "nvidia-smi",
		"--query-gpu=name,utilization.gpu", "--format=csv,noheader,nounits")
	output, err := cmd.Output()
	if err != nil {
		return "", 0, fmt.Errorf("nvidia-smi: %w", err)
	}
	return parseNvidia(string(output))
}

func parseNvidia(output string) (string, float64, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	name, usage, ok := strings.Cut(line, ",")
	if !ok {
		return "", 0, fmt.Errorf("unexpected nvidia-smi output %q", line)
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(usage), 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse gpu utilization: %w", err)
	}
	return strings.TrimSpace(name), pct, nil
}
