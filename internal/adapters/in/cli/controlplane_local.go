package cli

import (
	"github.com/dockside/dockside/internal/app"
)

type localControlPlane struct {
	*app.Kernel
}

// NewLocalControlPlane runs commands in-process against a fresh kernel.
func NewLocalControlPlane(configPath string, opts app.Options) (ControlPlane, error) {
	kernel, err := app.NewKernel(configPath, opts)
	if err != nil {
		return nil, err
	}
	return &localControlPlane{Kernel: kernel}, nil
}
