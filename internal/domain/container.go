// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no framework dependencies.
package domain

import "slices"

// ContainerState is the engine-reported lifecycle state of a container,
// folded into the few values the acquisition flow cares about.
type ContainerState string

const (
	ContainerStateRunning ContainerState = "running"
	ContainerStateExited  ContainerState = "exited"
	ContainerStateCreated ContainerState = "created"
	ContainerStateOther   ContainerState = "other"
)

// ParseContainerState maps a raw engine state string to a ContainerState.
// Anything that is not running, exited or created (dead, paused, restarting,
// removing...) becomes ContainerStateOther.
func ParseContainerState(raw string) ContainerState {
	switch ContainerState(raw) {
	case ContainerStateRunning, ContainerStateExited, ContainerStateCreated:
		return ContainerState(raw)
	default:
		return ContainerStateOther
	}
}

// Restartable reports whether a container in this state can simply be started
// again instead of being removed and recreated.
func (s ContainerState) Restartable() bool {
	return s == ContainerStateExited || s == ContainerStateCreated
}

// ContainerRecord is a read-only snapshot of a container as reported by the engine.
// It is re-queried on every acquisition and never cached.
type ContainerRecord struct {
	ID    string
	Names []string // engine form, each with a leading "/"
	State ContainerState
}

// HasName reports whether the record carries exactly the given container name.
// Only "/"+name equality counts; prefixes and fuzzy matches never do.
func (r ContainerRecord) HasName(name ContainerName) bool {
	return slices.Contains(r.Names, "/"+string(name))
}

// PortBinding publishes one container port on a host address.
type PortBinding struct {
	ContainerPort string // e.g. "5000/tcp"
	HostIP        string
	HostPort      string
}

// ContainerSpec holds configuration for creating the managed container.
type ContainerSpec struct {
	Name  ContainerName
	Image ImageReference
	Ports []PortBinding
	TTY   bool
}

// Fixed publishing policy for managed containers. Not configurable.
const (
	ManagedContainerPort = "5000/tcp"
	ManagedHostIP        = "0.0.0.0"
	ManagedHostPort      = "5000"
)

// NewManagedContainerSpec builds the only container shape this system creates:
// the derived name, a TTY, and 5000/tcp published on 0.0.0.0:5000.
func NewManagedContainerSpec(ref ImageReference) ContainerSpec {
	return ContainerSpec{
		Name:  ContainerNameFor(ref),
		Image: ref,
		Ports: []PortBinding{{
			ContainerPort: ManagedContainerPort,
			HostIP:        ManagedHostIP,
			HostPort:      ManagedHostPort,
		}},
		TTY: true,
	}
}
