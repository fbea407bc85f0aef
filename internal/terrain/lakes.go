package terrain

// LakesFromNoise converts smoothed noise into typed terrain. Filled cells
// become mountains and empty cells become acid, except that the first and
// last columns are always ground.
func LakesFromNoise(noise *Grid[bool]) *Grid[Tile] {
	tiles := NewGrid[Tile](noise.height, noise.width)
	for x := 0; x < noise.height; x++ {
		for y := 0; y < noise.width; y++ {
			switch {
			case y == 0 || y == noise.width-1:
				tiles.Set(x, y, TileGround)
			case noise.At(x, y):
				tiles.Set(x, y, TileMountain)
			default:
				tiles.Set(x, y, TileAcid)
			}
		}
	}
	return tiles
}

// SurroundLakes turns every mountain touching an acid tile (including
// diagonally) into ground, so each lake gets a walkable rim.
// Must run once, after all acid tiles are final.
func SurroundLakes(tiles *Grid[Tile]) {
	for x := 0; x < tiles.height; x++ {
		for y := 0; y < tiles.width; y++ {
			if tiles.At(x, y) == TileAcid {
				flattenAround(tiles, x, y)
			}
		}
	}
}

func flattenAround(tiles *Grid[Tile], x, y int) {
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if tiles.InBounds(nx, ny) && tiles.At(nx, ny) == TileMountain {
				tiles.Set(nx, ny, TileGround)
			}
		}
	}
}
