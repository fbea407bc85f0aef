package terrain

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/acidrun/internal/telemetry"
)

// Generator assembles complete maps from a validated set of parameters.
type Generator struct {
	params  Parameters
	rng     Rand
	logger  logr.Logger
	meter   metric.Meter
	metrics instruments
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(logger logr.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMeterProvider records generation metrics on mp instead of the global
// meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(g *Generator) {
		g.meter = mp.Meter("acidrun/terrain")
	}
}

// NewGenerator validates params and returns a generator drawing from rng.
func NewGenerator(params Parameters, rng Rand, opts ...Option) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		params: params,
		rng:    rng,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.meter == nil {
		g.meter = telemetry.Meter("terrain")
	}
	g.metrics = newInstruments(g.meter)
	return g, nil
}

// Generate validates params and assembles a single map.
func Generate(ctx context.Context, params Parameters, rng Rand, opts ...Option) (*Grid[Tile], error) {
	g, err := NewGenerator(params, rng, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx), nil
}

// Parameters returns the parameters the generator was built with.
func (g *Generator) Parameters() Parameters {
	return g.params
}

// Generate builds a fresh map: a ground start strip, the carved region, a
// ground end strip, all framed by border tiles.
func (g *Generator) Generate(ctx context.Context) *Grid[Tile] {
	tracer := telemetry.Tracer("terrain")
	ctx, span := tracer.Start(ctx, "terrain.generate")
	defer span.End()

	startTime := time.Now()
	p := g.params
	size := p.FinalSize()

	// Cells never written below stay TileBorder.
	final := NewGrid[Tile](size.Height, size.Width)

	// Start and end strips span the interior columns only
	fillGround(final, p.BorderWidth, p.BorderWidth+p.StartPartLength, p.BorderWidth)
	fillGround(final, size.Height-p.BorderWidth-p.EndPartLength, size.Height-p.BorderWidth, p.BorderWidth)

	region := g.generateRegion()

	originRow, originCol := p.RegionOrigin()
	for x := 0; x < region.height; x++ {
		copy(final.Row(originRow + x)[originCol:], region.Row(x))
	}

	elapsed := time.Since(startTime)
	checksum := Checksum(final)

	span.SetAttributes(
		attribute.Int("terrain.height", size.Height),
		attribute.Int("terrain.width", size.Width),
		attribute.Int("terrain.region_height", p.GeneratedMapSize.Height),
		attribute.Int("terrain.region_width", p.GeneratedMapSize.Width),
		attribute.Int("terrain.acid_density", p.AcidLakesDensity),
		attribute.Int64("terrain.generation_us", elapsed.Microseconds()),
		attribute.String("terrain.checksum", formatChecksum(checksum)),
	)
	g.metrics.record(ctx, p, elapsed)

	g.logger.V(1).Info("map generated",
		"height", size.Height,
		"width", size.Width,
		"checksum", formatChecksum(checksum),
		"elapsed", elapsed,
	)

	return final
}

// generateRegion runs the full stochastic pipeline on a fresh region buffer.
func (g *Generator) generateRegion() *Grid[Tile] {
	region := g.generateLakes()
	g.carveCorridors(region)
	return region
}

// generateLakes produces the region before any corridor is carved.
func (g *Generator) generateLakes() *Grid[Tile] {
	p := g.params
	noise := Noise(g.rng, p.GeneratedMapSize.Height, p.GeneratedMapSize.Width, p.fillPercent())
	Smooth(noise, p.AcidLakesIterations)

	region := LakesFromNoise(noise)
	SurroundLakes(region)
	return region
}

// carveCorridors carves every vertical corridor, then every horizontal one.
func (g *Generator) carveCorridors(region *Grid[Tile]) {
	p := g.params
	carver := CorridorCarver{Rand: g.rng, MaxRunLength: p.PathPartMaxLength}

	for col := 1; col < region.width; col += p.VerticalCanyonsPeriod {
		carver.CarveVertical(region, col, p.CanyonsWidth)
	}
	for row := 0; row < region.height; row += p.HorizontalCanyonsPeriod {
		carver.CarveHorizontal(region, row, p.CanyonsWidth)
	}
}

// fillGround sets rows [fromRow, toRow) to ground, leaving border columns
// on both sides untouched.
func fillGround(tiles *Grid[Tile], fromRow, toRow, border int) {
	for x := fromRow; x < toRow; x++ {
		row := tiles.Row(x)
		for y := border; y < tiles.width-border; y++ {
			row[y] = TileGround
		}
	}
}
