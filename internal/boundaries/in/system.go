package in

import (
	"context"

	"github.com/dockside/dockside/internal/domain"
)

// SystemService defines the contract for host telemetry queries.
type SystemService interface {
	// Snapshot returns the current host resource usage.
	Snapshot(ctx context.Context) (domain.SystemSnapshot, error)
}
