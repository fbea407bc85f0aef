// Package board is the gameplay view of a generated map: tile lookup,
// traversal rules and oxygen pickups.
package board

import (
	"github.com/samdwyer/acidrun/internal/terrain"
)

// Point addresses a board cell. X is the row (depth), Y the column.
type Point struct {
	X, Y int
}

// Board owns a generated map for the duration of a level.
type Board struct {
	Height int
	Width  int

	tiles   *terrain.Grid[terrain.Tile]
	pickups map[Point]int
}

// New creates a board that takes ownership of tiles.
func New(tiles *terrain.Grid[terrain.Tile]) *Board {
	return &Board{
		Height:  tiles.Height(),
		Width:   tiles.Width(),
		tiles:   tiles,
		pickups: make(map[Point]int),
	}
}

// InBounds returns true if p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return b.tiles.InBounds(p.X, p.Y)
}

// Tile returns the tile at p. Positions off the board read as border.
func (b *Board) Tile(p Point) terrain.Tile {
	if !b.InBounds(p) {
		return terrain.TileBorder
	}
	return b.tiles.At(p.X, p.Y)
}

// IsPassable returns true if a unit may step onto p.
func (b *Board) IsPassable(p Point) bool {
	return b.Tile(p).IsWalkable()
}

// Cost returns the traversal cost of p.
func (b *Board) Cost(p Point) int {
	return b.Tile(p).Cost()
}

// Cross records a unit moving over p. Mountains are flattened to ground.
// Returns true if the tile changed.
func (b *Board) Cross(p Point) bool {
	if b.Tile(p) != terrain.TileMountain {
		return false
	}
	b.tiles.Set(p.X, p.Y, terrain.TileGround)
	return true
}

// Tiles returns the underlying map. Callers must not modify it.
func (b *Board) Tiles() *terrain.Grid[terrain.Tile] {
	return b.tiles
}
