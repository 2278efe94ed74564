// Package progress implements the progress topic broker. Publishing never
// blocks: a subscriber that falls behind loses its oldest queued updates.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/dockside/dockside/internal/adapters/out/telemetry"
	"github.com/dockside/dockside/internal/boundaries/out"
	"github.com/dockside/dockside/internal/domain"
)

// Broker errors.
var (
	ErrClosed       = errors.New("progress broker is closed")
	ErrUnknownTopic = errors.New("unknown progress topic")
)

// Subscription receives the updates of one topic.
type Subscription struct {
	ID    string
	Topic string
	C     <-chan domain.ProgressUpdate

	ch     chan domain.ProgressUpdate
	broker *Broker
}

// Close detaches the subscription and closes C.
func (s *Subscription) Close() {
	s.broker.unsubscribe(s)
}

// Broker fans progress updates out to topic subscribers.
type Broker struct {
	mu         sync.RWMutex
	topics     map[string]map[string]*Subscription
	bufferSize int
	closed     bool
	log        zerowrap.Logger
	metrics    *telemetry.Metrics
}

// NewBroker creates a broker serving the given topics.
func NewBroker(bufferSize int, log zerowrap.Logger, topics ...string) *Broker {
	if bufferSize <= 0 {
		bufferSize = 64
	}

	b := &Broker{
		topics:     make(map[string]map[string]*Subscription),
		bufferSize: bufferSize,
		log:        log,
	}
	for _, topic := range topics {
		b.topics[topic] = make(map[string]*Subscription)
	}
	return b
}

// SetMetrics sets the telemetry metrics for the broker.
// Must be called before the first Publish.
func (b *Broker) SetMetrics(m *telemetry.Metrics) {
	b.mu.Lock()
	b.metrics = m
	b.mu.Unlock()
}

// Topics returns the served topic names.
func (b *Broker) Topics() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.topics))
	for name := range b.topics {
		names = append(names, name)
	}
	return names
}

// Sink returns a ProgressSink publishing to topic. The sink implements
// out.TopicSink.
func (b *Broker) Sink(topic string) out.ProgressSink {
	return topicSink{broker: b, topic: topic}
}

type topicSink struct {
	broker *Broker
	topic  string
}

func (s topicSink) Emit(ctx context.Context, update domain.ProgressUpdate) error {
	return s.broker.Publish(ctx, s.topic, update)
}

func (s topicSink) Topic() string { return s.topic }

// Publish delivers update to every subscriber of topic without blocking.
func (b *Broker) Publish(ctx context.Context, topic string, update domain.ProgressUpdate) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}
	subs, ok := b.topics[topic]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	for _, sub := range subs {
		if dropped := offer(sub.ch, update); dropped > 0 {
			b.log.Warn().
				Str(zerowrap.FieldLayer, "adapter").
				Str(zerowrap.FieldAdapter, "progress").
				Str("topic", topic).
				Str("subscriber", sub.ID).
				Int("dropped", dropped).
				Msg("subscriber is slow, dropped oldest progress update")
			if b.metrics != nil {
				b.metrics.ProgressDropped.Add(ctx, int64(dropped), metric.WithAttributes(attribute.String("topic", topic)))
			}
		}
	}
	if b.metrics != nil {
		b.metrics.ProgressPublished.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
	}

	b.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "progress").
		Str("topic", topic).
		Float64("percentage", update.Percentage).
		Str("message", update.Message).
		Int("subscribers", len(subs)).
		Msg("progress published")
	return nil
}

// offer queues update on ch, evicting the oldest queued updates until it fits.
// It returns how many updates were evicted.
func offer(ch chan domain.ProgressUpdate, update domain.ProgressUpdate) int {
	dropped := 0
	for {
		select {
		case ch <- update:
			return dropped
		default:
		}
		select {
		case <-ch:
			dropped++
		default:
		}
	}
}

// Subscribe registers a new subscriber on topic.
func (b *Broker) Subscribe(topic string) (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	subs, ok := b.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	ch := make(chan domain.ProgressUpdate, b.bufferSize)
	sub := &Subscription{
		ID:     uuid.NewString(),
		Topic:  topic,
		C:      ch,
		ch:     ch,
		broker: b,
	}
	subs[sub.ID] = sub

	b.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "progress").
		Str("topic", topic).
		Str("subscriber", sub.ID).
		Int("total_subscribers", len(subs)).
		Msg("progress subscriber added")
	return sub, nil
}

func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.topics[sub.Topic]
	if !ok {
		return
	}
	if _, ok := subs[sub.ID]; !ok {
		return
	}
	delete(subs, sub.ID)
	close(sub.ch)

	b.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "progress").
		Str("topic", sub.Topic).
		Str("subscriber", sub.ID).
		Msg("progress subscriber removed")
}

// Close closes every subscription. Later publishes fail with ErrClosed.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.topics {
		for id, sub := range subs {
			close(sub.ch)
			delete(subs, id)
		}
	}
	b.log.Info().Str(zerowrap.FieldAdapter, "progress").Msg("progress broker closed")
}
