// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, etc.).
package out

import (
	"context"
	"io"

	"github.com/dockside/dockside/internal/domain"
)

// EngineClient defines the container engine operations the acquisition flow needs.
// This interface abstracts the underlying engine control API so pull streams and
// container lists can be simulated deterministically.
type EngineClient interface {
	// ListContainers lists containers, including stopped ones when all is true.
	// Returns an error wrapping domain.ErrEngineUnreachable when the daemon is down.
	ListContainers(ctx context.Context, all bool) ([]domain.ContainerRecord, error)

	// RemoveContainer removes a container. Removing a missing container succeeds.
	RemoveContainer(ctx context.Context, containerID string, force bool) error

	// PullImage opens the pull stream for an image.
	PullImage(ctx context.Context, ref domain.ImageReference) (PullStream, error)

	// CreateContainer creates (but does not start) a container.
	CreateContainer(ctx context.Context, spec domain.ContainerSpec) (domain.ContainerRecord, error)

	// StartContainer starts a created or stopped container.
	StartContainer(ctx context.Context, containerID string) error
}

// PullStream is an ordered, finite, non-restartable sequence of pull events.
type PullStream interface {
	// Next returns the next event, io.EOF once the engine closed the stream
	// normally, or the engine's reason when the pull failed mid-stream.
	Next(ctx context.Context) (domain.PullEvent, error)

	// Close abandons the stream and releases the connection.
	Close() error
}

// EngineProber exposes engine liveness and version information.
type EngineProber interface {
	Ping(ctx context.Context) error
	ServerAPIVersion(ctx context.Context) (string, error)
}

// ContainerFileReader reads files out of a container.
type ContainerFileReader interface {
	// CopyFromContainer returns the content of a single regular file.
	// The caller must close the returned reader.
	CopyFromContainer(ctx context.Context, containerName, srcPath string) (io.ReadCloser, error)
}
