package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dockside/dockside/internal/adapters/in/cli/ui/styles"
)

// Status represents a status type for rendering.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusWarning
	StatusInfo
	StatusPending
)

var statusStyles = map[Status]struct {
	icon  string
	style lipgloss.Style
}{
	StatusSuccess: {styles.IconSuccess, styles.Theme.Success},
	StatusError:   {styles.IconError, styles.Theme.Error},
	StatusWarning: {styles.IconWarning, styles.Theme.Warning},
	StatusInfo:    {styles.IconInfo, styles.Theme.Info},
	StatusPending: {styles.IconPending, styles.Theme.Muted},
}

// RenderStatus renders a status with icon and optional label.
func RenderStatus(status Status, label string) string {
	cfg := statusStyles[status]
	if label == "" {
		return cfg.style.Render(cfg.icon)
	}
	return cfg.style.Render(cfg.icon + " " + label)
}
