package terrain

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric names recorded for every generated map.
const (
	metricGenerations = "terrain.generations"
	metricDuration    = "terrain.generation.duration"
	metricTiles       = "terrain.tiles"
)

type instruments struct {
	generations metric.Int64Counter
	duration    metric.Float64Histogram
	tiles       metric.Int64Counter
}

// newInstruments registers the generation instruments on meter. Instruments
// the meter rejects fall back to no-ops so generation never fails on metrics.
func newInstruments(meter metric.Meter) instruments {
	var (
		inst     instruments
		err      error
		fallback noop.Meter
	)

	inst.generations, err = meter.Int64Counter(metricGenerations,
		metric.WithDescription("Number of maps generated"))
	if err != nil {
		inst.generations, _ = fallback.Int64Counter(metricGenerations)
	}
	inst.duration, err = meter.Float64Histogram(metricDuration,
		metric.WithDescription("Time spent generating a map"),
		metric.WithUnit("ms"))
	if err != nil {
		inst.duration, _ = fallback.Float64Histogram(metricDuration)
	}
	inst.tiles, err = meter.Int64Counter(metricTiles,
		metric.WithDescription("Number of tiles produced across all maps"))
	if err != nil {
		inst.tiles, _ = fallback.Int64Counter(metricTiles)
	}
	return inst
}

func (m instruments) record(ctx context.Context, p Parameters, elapsed time.Duration) {
	size := p.FinalSize()
	attrs := metric.WithAttributes(attribute.Int("terrain.acid_density", p.AcidLakesDensity))

	m.generations.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	m.tiles.Add(ctx, int64(size.Height*size.Width), attrs)
}

func formatChecksum(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}
