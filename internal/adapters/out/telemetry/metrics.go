package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds dockside-specific OTel metrics instruments.
type Metrics struct {
	// Acquisitions
	AcquireTotal    metric.Int64Counter
	AcquireDuration metric.Float64Histogram
	AcquireJoins    metric.Int64Counter

	// Progress topics
	ProgressPublished metric.Int64Counter
	ProgressDropped   metric.Int64Counter
}

// NewMetrics creates and registers all dockside metric instruments on mp.
// A nil mp uses the global provider, which yields noop instruments until one
// is installed.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter("dockside")
	m := &Metrics{}
	var err error

	if m.AcquireTotal, err = meter.Int64Counter("dockside.acquire.total",
		metric.WithDescription("Total number of container acquisitions")); err != nil {
		return nil, err
	}
	if m.AcquireDuration, err = meter.Float64Histogram("dockside.acquire.duration_seconds",
		metric.WithDescription("Acquisition duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 15, 30, 60, 120, 300)); err != nil {
		return nil, err
	}
	if m.AcquireJoins, err = meter.Int64Counter("dockside.acquire.joins",
		metric.WithDescription("Callers that joined an acquisition already in flight")); err != nil {
		return nil, err
	}
	if m.ProgressPublished, err = meter.Int64Counter("dockside.progress.published",
		metric.WithDescription("Progress updates published to topics")); err != nil {
		return nil, err
	}
	if m.ProgressDropped, err = meter.Int64Counter("dockside.progress.dropped",
		metric.WithDescription("Progress updates dropped for slow subscribers")); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordAcquisition implements out.AcquisitionRecorder.
func (m *Metrics) RecordAcquisition(ctx context.Context, path, outcome string, elapsed time.Duration) {
	attrs := []attribute.KeyValue{attribute.String("outcome", outcome)}
	if path != "" {
		attrs = append(attrs, attribute.String("path", path))
	}
	m.AcquireTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.AcquireDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordJoin implements out.AcquisitionRecorder.
func (m *Metrics) RecordJoin(ctx context.Context) {
	m.AcquireJoins.Add(ctx, 1)
}
