package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/domain"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(input string) string {
	return ansiPattern.ReplaceAllString(input, "")
}

func TestDiskTable(t *testing.T) {
	out := stripANSI(DiskTable([]domain.DiskInfo{
		{Name: "/dev/nvme0n1p2", TotalSpace: 512_000_000_000, AvailableSpace: 128_000_000_000},
		{Name: "/dev/sdb1", TotalSpace: 64_000_000_000, AvailableSpace: 60_000_000_000},
	}))

	for _, want := range []string{"Disk", "Available", "/dev/nvme0n1p2", "512GB", "128GB", "75%", "/dev/sdb1", "6%"} {
		assert.Contains(t, out, want)
	}
}

func TestDiskTable_TruncatesLongNames(t *testing.T) {
	long := "/dev/mapper/luks-0123456789abcdef0123456789abcdef"
	out := stripANSI(DiskTable([]domain.DiskInfo{{Name: long, TotalSpace: 10, AvailableSpace: 5}}))

	assert.NotContains(t, out, long)
	assert.Contains(t, out, "/dev/mapper/luks-01234567...")
}

func TestRenderTable_NoColumnsRendersNothing(t *testing.T) {
	assert.Empty(t, renderTable(nil, [][]string{{"x"}}))
}

func TestRenderTable_RowsAlignWithHeaders(t *testing.T) {
	lines := strings.Split(stripANSI(renderTable(
		[]column{{title: "Disk"}, {title: "Used"}},
		[][]string{{"sda1", "10%"}},
	)), "\n")

	var header, row string
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Disk"):
			header = line
		case strings.Contains(line, "sda1"):
			row = line
		}
	}
	require.NotEmpty(t, header)
	require.NotEmpty(t, row)
	assert.Equal(t, runewidth.StringWidth(header), runewidth.StringWidth(row))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", Percent(5, 0))
	assert.Equal(t, "25%", Percent(1, 4))
	assert.Equal(t, "100%", Percent(4, 4))
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxWidth int
		expected string
	}{
		{name: "short text unchanged", value: "sda1", maxWidth: 8, expected: "sda1"},
		{name: "zero width passthrough", value: "nvme0n1p2", maxWidth: 0, expected: "nvme0n1p2"},
		{name: "width three all dots", value: "nvme0n1p2", maxWidth: 3, expected: "..."},
		{name: "ascii truncates", value: "nvme0n1p2", maxWidth: 6, expected: "nvm..."},
		{name: "wide runes truncate by display width", value: "磁盘磁盘", maxWidth: 5, expected: "磁..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateCell(tt.value, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.maxWidth)
			}
		})
	}
}

func TestTruncateCell_AnsiInputPassthrough(t *testing.T) {
	styled := "\x1b[32mnvme0n1p2\x1b[0m"
	assert.Equal(t, styled, truncateCell(styled, 3))
}
