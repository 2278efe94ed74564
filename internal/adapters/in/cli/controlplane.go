package cli

import (
	"context"

	"github.com/dockside/dockside/internal/app"
	"github.com/dockside/dockside/internal/boundaries/in"
)

// ControlPlane is the set of services a CLI command runs against.
type ControlPlane interface {
	Acquisition() in.AcquisitionService
	System() in.SystemService
	Files() in.FileService
	Logs() in.LogService

	// Context returns ctx carrying the process logger.
	Context(ctx context.Context) context.Context
	Close() error
}

// newControlPlane is a variable to allow swapping the services in tests.
var newControlPlane = func(configPath string, opts app.Options) (ControlPlane, error) {
	return NewLocalControlPlane(configPath, opts)
}
