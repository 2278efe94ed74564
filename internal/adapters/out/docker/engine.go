// Package docker implements the container engine adapter using the Docker API.
package docker

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// Engine implements the EngineClient, EngineProber and ContainerFileReader
// interfaces using the Docker API.
type Engine struct {
	client *client.Client
}

// NewEngine creates a Docker engine client. An empty host uses the
// environment (DOCKER_HOST) or the platform default socket.
func NewEngine(host string) (*Engine, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Engine{client: cli}, nil
}

// NewEngineWithClient creates an engine around an existing client (for testing).
func NewEngineWithClient(cli *client.Client) *Engine {
	return &Engine{client: cli}
}

// Close releases the underlying HTTP transport.
func (e *Engine) Close() error {
	return e.client.Close()
}

// ListContainers lists containers, including stopped ones when all is true.
func (e *Engine) ListContainers(ctx context.Context, all bool) ([]domain.ContainerRecord, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "ListContainers",
		"all":                 all,
	})
	log := zerowrap.FromCtx(ctx)

	containers, err := e.client.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, log.WrapErr(classify(err, domain.ErrEngineOperationFailed), "failed to list containers")
	}

	result := make([]domain.ContainerRecord, 0, len(containers))
	for _, c := range containers {
		result = append(result, domain.ContainerRecord{
			ID:    c.ID,
			Names: c.Names,
			State: domain.ParseContainerState(string(c.State)),
		})
	}

	log.Debug().Int("count", len(result)).Msg("containers listed")
	return result, nil
}

// RemoveContainer removes a container. A container that is already gone is not an error.
func (e *Engine) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "RemoveContainer",
		zerowrap.FieldEntityID: containerID,
		"force":                force,
	})
	log := zerowrap.FromCtx(ctx)

	err := e.client.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: force})
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			log.Debug().Msg("container already removed")
			return nil
		}
		return log.WrapErr(classify(err, domain.ErrEngineOperationFailed), "failed to remove container")
	}

	log.Info().Msg("container removed")
	return nil
}

// PullImage starts pulling an image and returns its progress stream.
func (e *Engine) PullImage(ctx context.Context, ref domain.ImageReference) (out.PullStream, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "PullImage",
		"image":               ref.String(),
	})
	log := zerowrap.FromCtx(ctx)

	log.Info().Msg("pulling image")

	reader, err := e.client.ImagePull(ctx, ref.String(), image.PullOptions{})
	if err != nil {
		return nil, log.WrapErr(classify(err, nil), "failed to pull image")
	}

	return newPullStream(reader), nil
}

// CreateContainer creates the container described by spec without starting it.
func (e *Engine) CreateContainer(ctx context.Context, spec domain.ContainerSpec) (domain.ContainerRecord, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateContainer",
		"container_name":      spec.Name.String(),
		"image":               spec.Image.String(),
	})
	log := zerowrap.FromCtx(ctx)

	exposedPorts := make(nat.PortSet)
	portBindings := make(nat.PortMap)
	for _, p := range spec.Ports {
		port := nat.Port(p.ContainerPort)
		exposedPorts[port] = struct{}{}
		portBindings[port] = append(portBindings[port], nat.PortBinding{
			HostIP:   p.HostIP,
			HostPort: p.HostPort,
		})
	}

	config := &container.Config{
		Image:        spec.Image.String(),
		Tty:          spec.TTY,
		ExposedPorts: exposedPorts,
	}
	hostConfig := &container.HostConfig{
		PortBindings: portBindings,
	}

	resp, err := e.client.ContainerCreate(ctx, config, hostConfig, nil, nil, spec.Name.String())
	if err != nil {
		return domain.ContainerRecord{}, log.WrapErr(classify(err, nil), "failed to create container")
	}
	for _, w := range resp.Warnings {
		log.Warn().Str("warning", w).Msg("engine warning on create")
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("container created")
	return domain.ContainerRecord{
		ID:    resp.ID,
		Names: []string{"/" + spec.Name.String()},
		State: domain.ContainerStateCreated,
	}, nil
}

// StartContainer starts a created or stopped container.
func (e *Engine) StartContainer(ctx context.Context, containerID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "StartContainer",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	err := e.client.ContainerStart(ctx, containerID, container.StartOptions{})
	if err != nil {
		return log.WrapErr(classify(err, nil), "failed to start container")
	}

	log.Info().Msg("container started")
	return nil
}

// Ping checks if Docker is responsive.
func (e *Engine) Ping(ctx context.Context) error {
	_, err := e.client.Ping(ctx)
	if err != nil {
		return classify(err, domain.ErrEngineUnreachable)
	}
	return nil
}

// ServerAPIVersion returns the API version the daemon speaks.
func (e *Engine) ServerAPIVersion(ctx context.Context) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "ServerAPIVersion",
	})
	log := zerowrap.FromCtx(ctx)

	version, err := e.client.ServerVersion(ctx)
	if err != nil {
		return "", log.WrapErr(classify(err, nil), "failed to get Docker version")
	}
	return version.APIVersion, nil
}

// classify tags connection failures as ErrEngineUnreachable and everything
// else with fallback, when one is given.
func classify(err error, fallback error) error {
	switch {
	case client.IsErrConnectionFailed(err):
		return fmt.Errorf("%w: %w", domain.ErrEngineUnreachable, err)
	case fallback != nil && !errors.Is(err, fallback):
		return fmt.Errorf("%w: %w", fallback, err)
	default:
		return err
	}
}
