// Package game drives level setup from an explicit difficulty tier.
package game

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/acidrun/internal/board"
	"github.com/samdwyer/acidrun/internal/difficulty"
	"github.com/samdwyer/acidrun/internal/telemetry"
	"github.com/samdwyer/acidrun/internal/terrain"
)

// Level holds everything set up for a single run across the map.
type Level struct {
	ID             string
	Difficulty     difficulty.Difficulty
	Board          *board.Board
	Parameters     terrain.Parameters
	StartOxygen    int
	SandstormSpeed difficulty.Vector3
	Spawn          board.Point
	Checksum       uint64
}

// StartLevel builds the level for tier d: it generates the map, wraps it in a
// board and scatters oxygen tanks over it.
func StartLevel(ctx context.Context, table *difficulty.Table, d difficulty.Difficulty, rng terrain.Rand, logger logr.Logger) (*Level, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.start")
	defer span.End()

	def, err := table.Level(d)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "level lookup failed")
		return nil, err
	}

	tiles, err := terrain.Generate(ctx, def.Generation, rng, terrain.WithLogger(logger))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "map generation failed")
		return nil, fmt.Errorf("generate level %d: %w", d, err)
	}

	b := board.New(tiles)
	tanks, err := b.PlaceOxygen(rng, def.OxygenChunkSize, def.OxygenTankAmount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "oxygen placement failed")
		return nil, fmt.Errorf("place oxygen for level %d: %w", d, err)
	}

	level := &Level{
		ID:             uuid.NewString(),
		Difficulty:     d,
		Board:          b,
		Parameters:     def.Generation,
		StartOxygen:    def.StartOxygen,
		SandstormSpeed: def.SandstormSpeed,
		Spawn:          spawnPoint(b, def.Generation),
		Checksum:       terrain.Checksum(tiles),
	}

	span.SetAttributes(
		attribute.String("level.id", level.ID),
		attribute.Int("level.difficulty", int(d)),
		attribute.Int("level.oxygen_tanks", tanks),
		attribute.Int("level.spawn_x", level.Spawn.X),
		attribute.Int("level.spawn_y", level.Spawn.Y),
	)
	logger.Info("level started",
		"id", level.ID,
		"difficulty", int(d),
		"height", b.Height,
		"width", b.Width,
		"oxygenTanks", tanks,
	)

	return level, nil
}

// spawnPoint returns the first ground tile of the start strip, scanning its
// rows left to right. The start strip is all ground, so when it is non-empty
// this is its top-left interior cell.
func spawnPoint(b *board.Board, p terrain.Parameters) board.Point {
	for x := p.BorderWidth; x < p.BorderWidth+p.StartPartLength; x++ {
		for y := p.BorderWidth; y < b.Width-p.BorderWidth; y++ {
			if pt := (board.Point{X: x, Y: y}); b.Tile(pt) == terrain.TileGround {
				return pt
			}
		}
	}
	// No start strip: drop the unit at the top-left of the region
	row, col := p.RegionOrigin()
	return board.Point{X: row, Y: col}
}
