package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/docker/go-units"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dockside/dockside/internal/adapters/in/cli/ui/styles"
	"github.com/dockside/dockside/internal/domain"
)

// diskNameWidth caps the device column; mapper and by-id paths get long.
const diskNameWidth = 28

type column struct {
	title string
	width int
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(styles.ColorBorder)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(styles.ColorText).Padding(0, 1)
)

// DiskTable renders one row per disk: name, total, available and used share.
func DiskTable(disks []domain.DiskInfo) string {
	cols := []column{
		{title: "Disk", width: diskNameWidth},
		{title: "Total"},
		{title: "Available"},
		{title: "Used"},
	}

	rows := make([][]string, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, []string{
			d.Name,
			units.HumanSize(float64(d.TotalSpace)),
			units.HumanSize(float64(d.AvailableSpace)),
			Percent(d.TotalSpace-min(d.AvailableSpace, d.TotalSpace), d.TotalSpace),
		})
	}
	return renderTable(cols, rows)
}

// Percent formats used/total as a whole percentage. A zero total is 0%.
func Percent(used, total uint64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(used)*100/float64(total))
}

func renderTable(cols []column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.title
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			if c < len(cols) {
				cell = truncateCell(cell, cols[c].width)
			}
			cells[r][c] = cell
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		String()
}

// truncateCell shortens value to maxWidth display columns, ending in "...".
// Styled values are left alone so escape sequences are never cut.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}
	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	target := maxWidth - 3
	var b strings.Builder
	width := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if width+w > target {
			break
		}
		b.WriteString(g.Str())
		width += w
	}
	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}
	return b.String() + "..."
}
