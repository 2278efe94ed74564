package progress

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func update(pct float64) domain.ProgressUpdate {
	return domain.ProgressUpdate{Message: fmt.Sprintf("step %.0f", pct), Percentage: pct}
}

func drain(sub *Subscription) []domain.ProgressUpdate {
	var got []domain.ProgressUpdate
	for {
		select {
		case u, ok := <-sub.C:
			if !ok {
				return got
			}
			got = append(got, u)
		default:
			return got
		}
	}
}

func TestBroker_FanOut(t *testing.T) {
	b := NewBroker(8, testLogger(), domain.DefaultProgressTopic)

	s1, err := b.Subscribe(domain.DefaultProgressTopic)
	require.NoError(t, err)
	s2, err := b.Subscribe(domain.DefaultProgressTopic)
	require.NoError(t, err)

	sink := b.Sink(domain.DefaultProgressTopic)
	require.NoError(t, sink.Emit(context.Background(), update(0)))
	require.NoError(t, sink.Emit(context.Background(), update(100)))

	want := []domain.ProgressUpdate{update(0), update(100)}
	assert.Equal(t, want, drain(s1))
	assert.Equal(t, want, drain(s2))
}

func TestBroker_SinkReportsTopic(t *testing.T) {
	b := NewBroker(8, testLogger(), domain.DefaultProgressTopic)
	sub, err := b.Subscribe(domain.DefaultProgressTopic)
	require.NoError(t, err)

	sink := b.Sink(domain.DefaultProgressTopic)
	assert.Equal(t, domain.DefaultProgressTopic, out.TopicOf(sink))
	assert.Empty(t, out.TopicOf(out.DiscardProgress))

	require.NoError(t, sink.Emit(context.Background(), update(10)))
	assert.Equal(t, []domain.ProgressUpdate{update(10)}, drain(sub))
}

func TestBroker_NoSubscribersIsFine(t *testing.T) {
	b := NewBroker(8, testLogger(), "docker_progress")

	assert.NoError(t, b.Publish(context.Background(), "docker_progress", update(10)))
}

func TestBroker_UnknownTopic(t *testing.T) {
	b := NewBroker(8, testLogger(), "docker_progress")

	err := b.Publish(context.Background(), "other", update(10))
	assert.ErrorIs(t, err, ErrUnknownTopic)

	_, err = b.Subscribe("other")
	assert.ErrorIs(t, err, ErrUnknownTopic)
}

func TestBroker_SlowSubscriberKeepsLatest(t *testing.T) {
	b := NewBroker(2, testLogger(), "t")
	sub, err := b.Subscribe("t")
	require.NoError(t, err)

	for _, pct := range []float64{0, 10, 30, 85, 100} {
		require.NoError(t, b.Publish(context.Background(), "t", update(pct)))
	}

	got := drain(sub)
	require.Len(t, got, 2)
	assert.Equal(t, update(85), got[0])
	assert.Equal(t, update(100), got[1])
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker(2, testLogger(), "t")
	sub, err := b.Subscribe("t")
	require.NoError(t, err)

	sub.Close()
	sub.Close()

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.NoError(t, b.Publish(context.Background(), "t", update(1)))
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker(2, testLogger(), "t")
	sub, err := b.Subscribe("t")
	require.NoError(t, err)

	b.Close()

	_, ok := <-sub.C
	assert.False(t, ok)
	assert.ErrorIs(t, b.Publish(context.Background(), "t", update(1)), ErrClosed)
	_, err = b.Subscribe("t")
	assert.ErrorIs(t, err, ErrClosed)

	sub.Close()
}

func TestBroker_ConcurrentPublishers(t *testing.T) {
	b := NewBroker(4, testLogger(), "t")
	sub, err := b.Subscribe("t")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.NoError(t, b.Publish(context.Background(), "t", update(float64(j))))
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, len(drain(sub)), 4)
}
