package acquire

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// flight is one acquisition in progress for a container name. The leader
// publishes updates into it; joiners replay what was published so far and
// then follow live.
type flight struct {
	id    string
	topic string
	done  chan struct{}

	mu      sync.Mutex
	history []domain.ProgressUpdate
	joiners map[string]*joiner

	containerID string
	err         error
}

type joiner struct {
	ctx    context.Context
	sink   out.ProgressSink
	failed chan struct{}
	once   sync.Once
	err    error
}

// newFlight creates a flight led through lead. The leader's topic, if any, is
// kept so joiners publishing to the same topic are not fed twice.
func newFlight(lead out.ProgressSink) *flight {
	return &flight{
		id:      uuid.NewString(),
		topic:   out.TopicOf(lead),
		done:    make(chan struct{}),
		joiners: make(map[string]*joiner),
	}
}

// publish records update, hands it to the leader's sink and then to every
// attached joiner. Only a leader sink failure is returned.
func (f *flight) publish(ctx context.Context, lead out.ProgressSink, update domain.ProgressUpdate) error {
	f.mu.Lock()
	f.history = append(f.history, update)
	joiners := make([]*joiner, 0, len(f.joiners))
	ids := make([]string, 0, len(f.joiners))
	for id, j := range f.joiners {
		joiners = append(joiners, j)
		ids = append(ids, id)
	}
	f.mu.Unlock()

	if err := lead.Emit(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrProgressDeliveryFailed, err)
	}

	for i, j := range joiners {
		if err := j.sink.Emit(j.ctx, update); err != nil {
			j.fail(fmt.Errorf("%w: %w", domain.ErrProgressDeliveryFailed, err))
			f.detach(ids[i])
		}
	}
	return nil
}

// attach replays the history into sink and registers it for live updates.
// The replay runs under the flight lock so no update is skipped or doubled.
func (f *flight) attach(ctx context.Context, sink out.ProgressSink) (string, *joiner) {
	j := &joiner{ctx: ctx, sink: sink, failed: make(chan struct{})}
	id := uuid.NewString()

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, update := range f.history {
		if err := sink.Emit(ctx, update); err != nil {
			j.fail(fmt.Errorf("%w: %w", domain.ErrProgressDeliveryFailed, err))
			return id, j
		}
	}
	f.joiners[id] = j
	return id, j
}

// sharesTopic reports whether sink delivers to the same topic as the leader.
func (f *flight) sharesTopic(sink out.ProgressSink) bool {
	return f.topic != "" && out.TopicOf(sink) == f.topic
}

func (f *flight) detach(id string) {
	f.mu.Lock()
	delete(f.joiners, id)
	f.mu.Unlock()
}

// finish stores the shared result and releases every waiter.
func (f *flight) finish(containerID string, err error) {
	f.mu.Lock()
	f.containerID = containerID
	f.err = err
	f.joiners = map[string]*joiner{}
	f.mu.Unlock()
	close(f.done)
}

func (f *flight) result() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.containerID, f.err
}

func (j *joiner) fail(err error) {
	j.once.Do(func() {
		j.err = err
		close(j.failed)
	})
}
