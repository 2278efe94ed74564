package out

import "context"

// EngineAvailability makes sure the container engine answers before the
// acquisition flow talks to it. Implementations may try to start the engine.
type EngineAvailability interface {
	// EnsureAvailable returns nil once the engine is reachable, or an error
	// wrapping domain.ErrEngineUnreachable.
	EnsureAvailable(ctx context.Context) error
}

// NameLocker provides advisory locks keyed by container name that hold
// across processes.
type NameLocker interface {
	// Lock blocks until the lock for name is held or ctx ends.
	// The returned function releases it.
	Lock(ctx context.Context, name string) (unlock func() error, err error)
}
