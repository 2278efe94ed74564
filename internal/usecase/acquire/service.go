// Package acquire implements the container acquisition use case: make sure
// the managed container of an image is running, reporting progress on the way.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/distribution/reference"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// Stage is a step of the acquisition state machine.
type Stage int

const (
	StageCheckingEngine Stage = iota
	StageCheckingExisting
	StageReusing
	StageCleaning
	StagePulling
	StageCreating
	StageStarting
	StageReady
)

func (s Stage) String() string {
	switch s {
	case StageCheckingEngine:
		return "checking_engine"
	case StageCheckingExisting:
		return "checking_existing"
	case StageReusing:
		return "reusing"
	case StageCleaning:
		return "cleaning"
	case StagePulling:
		return "pulling"
	case StageCreating:
		return "creating"
	case StageStarting:
		return "starting"
	case StageReady:
		return "ready"
	default:
		return "unknown"
	}
}

// How the container was obtained, for metrics.
const (
	PathReused    = "reused"
	PathRestarted = "restarted"
	PathCreated   = "created"
)

// Service implements the AcquisitionService interface.
type Service struct {
	engine       out.EngineClient
	availability out.EngineAvailability
	locker       out.NameLocker
	recorder     out.AcquisitionRecorder

	mu      sync.Mutex
	flights map[domain.ContainerName]*flight
}

// NewService creates a new acquisition service. locker and recorder are optional.
func NewService(
	engine out.EngineClient,
	availability out.EngineAvailability,
	locker out.NameLocker,
	recorder out.AcquisitionRecorder,
) *Service {
	return &Service{
		engine:       engine,
		availability: availability,
		locker:       locker,
		recorder:     recorder,
		flights:      make(map[domain.ContainerName]*flight),
	}
}

// Acquire makes sure the managed container of ref is running and returns its ID.
// Concurrent calls for the same image share one attempt.
func (s *Service) Acquire(ctx context.Context, ref domain.ImageReference, sink out.ProgressSink) (string, error) {
	name := domain.ContainerNameFor(ref)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "Acquire",
		"image":               ref.String(),
		"container_name":      name.String(),
	})
	log := zerowrap.FromCtx(ctx)

	if sink == nil {
		sink = out.DiscardProgress
	}

	if err := ValidateReference(ref); err != nil {
		log.Warn().Err(err).Msg("rejected image reference")
		return "", err
	}

	s.mu.Lock()
	if f, ok := s.flights[name]; ok {
		s.mu.Unlock()
		return s.join(ctx, f, sink)
	}
	f := newFlight(sink)
	s.flights[name] = f
	s.mu.Unlock()

	log.Debug().Str("flight_id", f.id).Msg("leading acquisition")

	// The attempt ignores the leader's cancellation.
	attemptCtx := context.WithoutCancel(ctx)
	go func() {
		id, err := s.lead(attemptCtx, f, ref, name, sink)

		s.mu.Lock()
		delete(s.flights, name)
		s.mu.Unlock()
		f.finish(id, err)
	}()

	select {
	case <-f.done:
		return f.result()
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Str("flight_id", f.id).Msg("caller left, acquisition continues")
		return "", ctx.Err()
	}
}

// ValidateReference checks that ref is a well-formed image reference.
func ValidateReference(ref domain.ImageReference) error {
	if ref == "" {
		return fmt.Errorf("%w: empty reference", domain.ErrInvalidImageReference)
	}
	if _, err := reference.ParseNormalizedNamed(string(ref)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidImageReference, err)
	}
	return nil
}

func (s *Service) join(ctx context.Context, f *flight, sink out.ProgressSink) (string, error) {
	log := zerowrap.FromCtx(ctx)
	log.Debug().Str("flight_id", f.id).Msg("joining acquisition in flight")
	if s.recorder != nil {
		s.recorder.RecordJoin(ctx)
	}

	if f.sharesTopic(sink) {
		log.Debug().Str("topic", f.topic).Msg("leader already publishes to this topic")
		sink = out.DiscardProgress
	}

	id, j := f.attach(ctx, sink)
	defer f.detach(id)

	select {
	case <-f.done:
		select {
		case <-j.failed:
			return "", j.err
		default:
		}
		return f.result()
	case <-j.failed:
		log.Warn().Err(j.err).Msg("progress delivery failed for joined caller")
		return "", j.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Service) lead(ctx context.Context, f *flight, ref domain.ImageReference, name domain.ContainerName, sink out.ProgressSink) (string, error) {
	log := zerowrap.FromCtx(ctx)
	start := time.Now()

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, name.String())
		if err != nil {
			return "", log.WrapErr(err, "failed to lock container name")
		}
		defer func() {
			if err := unlock(); err != nil {
				log.Warn().Err(err).Msg("failed to release container name lock")
			}
		}()
	}

	r := &run{
		engine: s.engine,
		name:   name,
		ref:    ref,
		emit: func(pct float64, msg string) error {
			return f.publish(ctx, sink, domain.ProgressUpdate{Message: msg, Percentage: pct})
		},
	}

	id, path, err := r.execute(ctx, s.availability)

	elapsed := time.Since(start)
	outcome := "ok"
	if err != nil {
		outcome = string(domain.KindOf(err))
		log.Error().Err(err).Str("stage", r.stage.String()).Dur(zerowrap.FieldDuration, elapsed).Msg("acquisition failed")
	} else {
		log.Info().Str(zerowrap.FieldEntityID, id).Str("path", path).Dur(zerowrap.FieldDuration, elapsed).Msg("container ready")
	}
	if s.recorder != nil {
		s.recorder.RecordAcquisition(ctx, path, outcome, elapsed)
	}

	return id, err
}

// run is one pass through the state machine. It is never reused.
type run struct {
	engine out.EngineClient
	name   domain.ContainerName
	ref    domain.ImageReference
	emit   func(pct float64, msg string) error
	stage  Stage
}

func (r *run) execute(ctx context.Context, availability out.EngineAvailability) (string, string, error) {
	log := zerowrap.FromCtx(ctx)

	r.stage = StageCheckingEngine
	if err := availability.EnsureAvailable(ctx); err != nil {
		if !errors.Is(err, domain.ErrEngineUnreachable) {
			err = fmt.Errorf("%w: %w", domain.ErrEngineUnreachable, err)
		}
		return "", "", err
	}

	r.stage = StageCheckingExisting
	if err := r.emit(domain.ProgressChecking, domain.MsgCheckingExisting); err != nil {
		return "", "", err
	}

	running, err := r.engine.ListContainers(ctx, false)
	if err != nil {
		return "", "", engineError(err)
	}
	if rec, ok := r.find(running); ok {
		log.Debug().Str(zerowrap.FieldEntityID, rec.ID).Str("state", string(rec.State)).Msg("found container in running list")
		return r.reuse(ctx, rec)
	}

	if err := r.emit(domain.ProgressCheckingStale, domain.MsgCheckingStale); err != nil {
		return "", "", err
	}

	all, err := r.engine.ListContainers(ctx, true)
	if err != nil {
		return "", "", engineError(err)
	}
	matches := lo.Filter(all, func(rec domain.ContainerRecord, _ int) bool {
		return rec.HasName(r.name)
	})
	if rec, ok := lo.Find(matches, func(rec domain.ContainerRecord) bool {
		return rec.State.Restartable()
	}); ok {
		log.Debug().Str(zerowrap.FieldEntityID, rec.ID).Str("state", string(rec.State)).Msg("found stopped container")
		return r.reuse(ctx, rec)
	}

	if len(matches) > 0 {
		r.stage = StageCleaning
		for _, rec := range matches {
			if err := r.emit(domain.ProgressRemovingStale, domain.MsgRemovingStale); err != nil {
				return "", "", err
			}
			log.Info().Str(zerowrap.FieldEntityID, rec.ID).Str("state", string(rec.State)).Msg("removing stale container")
			if err := r.engine.RemoveContainer(ctx, rec.ID, true); err != nil {
				return "", "", engineError(err)
			}
		}
	}

	if err := r.pull(ctx); err != nil {
		return "", "", err
	}

	r.stage = StageCreating
	if err := r.emit(domain.ProgressCreating, domain.MsgCreating); err != nil {
		return "", "", err
	}
	created, err := r.engine.CreateContainer(ctx, domain.NewManagedContainerSpec(r.ref))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrCreateFailed, err)
	}

	r.stage = StageStarting
	if err := r.emit(domain.ProgressStarting, domain.MsgStarting); err != nil {
		return "", "", err
	}
	if err := r.engine.StartContainer(ctx, created.ID); err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrStartFailed, err)
	}

	if err := r.ready(); err != nil {
		return "", "", err
	}
	return created.ID, PathCreated, nil
}

func (r *run) find(records []domain.ContainerRecord) (domain.ContainerRecord, bool) {
	return lo.Find(records, func(rec domain.ContainerRecord) bool {
		return rec.HasName(r.name)
	})
}

func (r *run) reuse(ctx context.Context, rec domain.ContainerRecord) (string, string, error) {
	r.stage = StageReusing
	path := PathReused

	if rec.State != domain.ContainerStateRunning {
		path = PathRestarted
		if err := r.emit(domain.ProgressReusing, domain.MsgStartingExisting); err != nil {
			return "", "", err
		}
		if err := r.engine.StartContainer(ctx, rec.ID); err != nil {
			return "", "", fmt.Errorf("%w: %w", domain.ErrStartFailed, err)
		}
	}

	if err := r.ready(); err != nil {
		return "", "", err
	}
	return rec.ID, path, nil
}

// pull consumes the whole pull stream. The stream is closed before returning.
func (r *run) pull(ctx context.Context) error {
	log := zerowrap.FromCtx(ctx)

	r.stage = StagePulling
	if err := r.emit(domain.ProgressPullStart, domain.MsgPulling); err != nil {
		return err
	}

	stream, err := r.engine.PullImage(ctx, r.ref)
	if err != nil {
		if errors.Is(err, domain.ErrEngineUnreachable) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrPullFailed, err)
	}
	defer func() {
		if err := stream.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close pull stream")
		}
	}()

	agg := NewPullProgressAggregator()
	for {
		ev, err := stream.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrPullFailed, err)
		}
		update, ok := agg.Observe(ev)
		if !ok {
			continue
		}
		if err := r.emit(update.Percentage, update.Message); err != nil {
			return err
		}
	}

	log.Debug().
		Dict("layers", zerolog.Dict().
			Uint32("seen", agg.LayersSeen()).
			Uint32("completed", agg.LayersCompleted())).
		Msg("image pulled")
	return nil
}

func (r *run) ready() error {
	r.stage = StageReady
	return r.emit(domain.ProgressReady, domain.MsgReady)
}

// engineError maps a list or remove failure onto the error taxonomy.
// Context errors are returned as is.
func engineError(err error) error {
	if errors.Is(err, domain.ErrEngineUnreachable) || errors.Is(err, domain.ErrEngineOperationFailed) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrEngineOperationFailed, err)
}
