package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func newTestProvider() *Provider {
	reader := sdkmetric.NewManualReader()
	return &Provider{
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		reader:        reader,
	}
}

func findPoint(points []Point, name string, attrs map[string]string) (Point, bool) {
	for _, p := range points {
		if p.Name != name {
			continue
		}
		match := true
		for k, v := range attrs {
			if p.Attributes[k] != v {
				match = false
			}
		}
		if match {
			return p, true
		}
	}
	return Point{}, false
}

func TestMetrics_RecordAcquisition(t *testing.T) {
	p := newTestProvider()
	m, err := NewMetrics(p.MeterProvider)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordAcquisition(ctx, "created", "ok", 2*time.Second)
	m.RecordAcquisition(ctx, "created", "ok", time.Second)
	m.RecordAcquisition(ctx, "", "PullFailed", time.Second)
	m.RecordJoin(ctx)

	points, err := p.Snapshot(ctx)
	require.NoError(t, err)

	ok, found := findPoint(points, "dockside.acquire.total", map[string]string{"outcome": "ok", "path": "created"})
	require.True(t, found)
	assert.Equal(t, 2.0, ok.Value)

	failed, found := findPoint(points, "dockside.acquire.total", map[string]string{"outcome": "PullFailed"})
	require.True(t, found)
	assert.Equal(t, 1.0, failed.Value)
	assert.NotContains(t, failed.Attributes, "path")

	hist, found := findPoint(points, "dockside.acquire.duration_seconds", map[string]string{"outcome": "ok"})
	require.True(t, found)
	assert.Equal(t, uint64(2), hist.Count)
	assert.InDelta(t, 3.0, hist.Value, 1e-9)

	joins, found := findPoint(points, "dockside.acquire.joins", nil)
	require.True(t, found)
	assert.Equal(t, 1.0, joins.Value)
}

func TestProvider_Disabled(t *testing.T) {
	p := NewProvider(Config{Metrics: false})

	assert.False(t, p.Enabled())
	points, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewMetrics_GlobalProvider(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	// Noop instruments must be safe to use.
	m.RecordAcquisition(context.Background(), "reused", "ok", time.Millisecond)
	m.RecordJoin(context.Background())
}
