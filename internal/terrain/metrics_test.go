package terrain

import (
	"context"
	"math/rand"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collect gathers every metric recorded on the reader, keyed by name.
func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	byName := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			byName[m.Name] = m
		}
	}
	return byName
}

func sumOf(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("Metric %s: expected int64 sum, got %T", m.Name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestGenerateRecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	p := testParameters()
	_, err := Generate(context.Background(), p, rand.New(rand.NewSource(4)), WithMeterProvider(provider))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	metrics := collect(t, reader)

	gens, ok := metrics[metricGenerations]
	if !ok {
		t.Fatalf("Missing %s metric", metricGenerations)
	}
	if got := sumOf(t, gens); got != 1 {
		t.Errorf("Expected 1 generation, got %d", got)
	}

	tiles, ok := metrics[metricTiles]
	if !ok {
		t.Fatalf("Missing %s metric", metricTiles)
	}
	size := p.FinalSize()
	if got := sumOf(t, tiles); got != int64(size.Height*size.Width) {
		t.Errorf("Expected %d tiles, got %d", size.Height*size.Width, got)
	}

	duration, ok := metrics[metricDuration]
	if !ok {
		t.Fatalf("Missing %s metric", metricDuration)
	}
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("Expected float64 histogram, got %T", duration.Data)
	}
	if len(hist.DataPoints) != 1 || hist.DataPoints[0].Count != 1 {
		t.Errorf("Expected one duration sample, got %+v", hist.DataPoints)
	}
}

func TestGenerateMetricsAccumulate(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	g, err := NewGenerator(testParameters(), rand.New(rand.NewSource(5)), WithMeterProvider(provider))
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		g.Generate(context.Background())
	}

	if got := sumOf(t, collect(t, reader)[metricGenerations]); got != 3 {
		t.Errorf("Expected 3 generations, got %d", got)
	}
}

func TestGenerateWithoutMeterProvider(t *testing.T) {
	// The global provider is a no-op until telemetry is set up
	if _, err := Generate(context.Background(), testParameters(), rand.New(rand.NewSource(6))); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
}
