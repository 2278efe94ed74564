package out

import (
	"context"

	"github.com/dockside/dockside/internal/domain"
)

// SystemProbe reads host resource usage.
type SystemProbe interface {
	Snapshot(ctx context.Context) (domain.SystemSnapshot, error)
}

// MessageWriter prints operator-facing log lines.
type MessageWriter interface {
	WriteMessage(message string, isError bool) error
}
