// Package terrain provides procedural generation of acid-lake maps.
package terrain

// Tile represents a single map tile.
type Tile uint8

const (
	// TileBorder is the generator's edge padding. It is the zero value, so any
	// cell the generator never writes stays Border.
	TileBorder Tile = iota
	// TileGround is freely walkable terrain.
	TileGround
	// TileMountain is walkable at a higher cost and may be flattened to ground.
	TileMountain
	// TileAcid is a lake tile and can never be walked on.
	TileAcid
)

// IsWalkable returns true if a unit can stand on the tile.
func (t Tile) IsWalkable() bool {
	return t == TileGround || t == TileMountain
}

// Cost returns the traversal cost of the tile. Unwalkable tiles cost 0.
func (t Tile) Cost() int {
	switch t {
	case TileGround:
		return 1
	case TileMountain:
		return 2
	default:
		return 0
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileGround:
		return '.'
	case TileMountain:
		return '^'
	case TileAcid:
		return '~'
	default:
		return '#'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileBorder:
		return "border"
	case TileGround:
		return "ground"
	case TileMountain:
		return "mountain"
	case TileAcid:
		return "acid"
	default:
		return "unknown"
	}
}
