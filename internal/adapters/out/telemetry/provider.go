// Package telemetry provides OpenTelemetry metrics for dockside. Metrics are
// kept in process and read on demand, there is no exporter.
package telemetry

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// Config holds telemetry configuration.
type Config struct {
	Metrics bool `mapstructure:"metrics"`
}

// Provider owns the meter provider and the reader used to snapshot it.
type Provider struct {
	MeterProvider *sdkmetric.MeterProvider
	reader        *sdkmetric.ManualReader
}

// Point is one metric data point in a snapshot.
type Point struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Value      float64           `json:"value"`
	Count      uint64            `json:"count,omitempty"`
}

// NewProvider creates the in-process meter provider and installs it globally.
// When metrics are disabled it returns a provider whose Snapshot is empty.
func NewProvider(cfg Config) *Provider {
	if !cfg.Metrics {
		return &Provider{}
	}

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(mp)

	return &Provider{MeterProvider: mp, reader: reader}
}

// Enabled reports whether metrics are collected.
func (p *Provider) Enabled() bool {
	return p.reader != nil
}

// Meters returns the meter provider to build instruments on, or nil when
// metrics are disabled.
func (p *Provider) Meters() metric.MeterProvider {
	if p.MeterProvider == nil {
		return nil
	}
	return p.MeterProvider
}

// Snapshot collects the current value of every instrument.
func (p *Provider) Snapshot(ctx context.Context) ([]Point, error) {
	if p.reader == nil {
		return []Point{}, nil
	}

	var rm metricdata.ResourceMetrics
	if err := p.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collect metrics: %w", err)
	}

	points := []Point{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					points = append(points, Point{Name: m.Name, Attributes: attrMap(dp.Attributes), Value: float64(dp.Value)})
				}
			case metricdata.Sum[float64]:
				for _, dp := range data.DataPoints {
					points = append(points, Point{Name: m.Name, Attributes: attrMap(dp.Attributes), Value: dp.Value})
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					points = append(points, Point{Name: m.Name, Attributes: attrMap(dp.Attributes), Value: dp.Sum, Count: dp.Count})
				}
			}
		}
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Name < points[j].Name })
	return points, nil
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.MeterProvider == nil {
		return nil
	}
	return p.MeterProvider.Shutdown(ctx)
}

func attrMap(set attribute.Set) map[string]string {
	if set.Len() == 0 {
		return nil
	}
	out := make(map[string]string, set.Len())
	for _, kv := range set.ToSlice() {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}
