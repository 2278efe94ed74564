// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// AcquisitionService defines the contract for getting an image's container running.
type AcquisitionService interface {
	// Acquire makes sure the managed container of ref is running and returns its ID.
	// Progress updates are emitted to sink in order; the last one of a successful
	// call is the 100% ready update.
	Acquire(ctx context.Context, ref domain.ImageReference, sink out.ProgressSink) (string, error)
}
