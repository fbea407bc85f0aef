package terrain

import (
	"math/rand"
	"testing"
)

func assertTileGrid(t *testing.T, got *Grid[Tile], want ...string) {
	t.Helper()
	expected := tileGrid(want...)
	if got.Height() != expected.Height() || got.Width() != expected.Width() {
		t.Fatalf("Expected %dx%d grid, got %dx%d", expected.Height(), expected.Width(), got.Height(), got.Width())
	}
	for x := 0; x < expected.Height(); x++ {
		for y := 0; y < expected.Width(); y++ {
			if got.At(x, y) != expected.At(x, y) {
				t.Errorf("Cell (%d,%d): expected %s, got %s", x, y, expected.At(x, y), got.At(x, y))
			}
		}
	}
}

func TestLakesFromNoise(t *testing.T) {
	noise := boolGrid(
		"#.#.",
		"....",
		"####",
	)
	tiles := LakesFromNoise(noise)

	// Edge columns are ground no matter what the noise says
	assertTileGrid(t, tiles,
		".~^.",
		".~~.",
		".^^.",
	)
}

func TestSurroundLakes(t *testing.T) {
	tiles := tileGrid(
		"^^^^^",
		"^^~^^",
		"^^^^^",
		"^^^^^",
	)
	SurroundLakes(tiles)

	assertTileGrid(t, tiles,
		"^...^",
		"^.~.^",
		"^...^",
		"^^^^^",
	)
}

func TestSurroundLakesAtGridEdge(t *testing.T) {
	tiles := tileGrid(
		"~^^",
		"^^^",
		"^^~",
	)
	SurroundLakes(tiles)

	assertTileGrid(t, tiles,
		"~.^",
		"...",
		"^.~",
	)
}

func TestForcedEdgesDoNotErode(t *testing.T) {
	noise := NewGrid[bool](4, 5)
	fill(noise, true)

	tiles := LakesFromNoise(noise)
	SurroundLakes(tiles)

	assertTileGrid(t, tiles,
		".^^^.",
		".^^^.",
		".^^^.",
		".^^^.",
	)
}

func TestEmptyNoiseHasNoMountains(t *testing.T) {
	noise := Noise(rand.New(rand.NewSource(3)), 12, 9, 0)
	Smooth(noise, 2)

	tiles := LakesFromNoise(noise)
	SurroundLakes(tiles)

	for x := 0; x < tiles.Height(); x++ {
		for y := 0; y < tiles.Width(); y++ {
			if tiles.At(x, y) == TileMountain {
				t.Errorf("Unexpected mountain at (%d,%d)", x, y)
			}
		}
	}
}

func TestLakeRimOnRandomNoise(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		noise := Noise(rng, 25, 18, 55)
		Smooth(noise, 2)

		tiles := LakesFromNoise(noise)
		SurroundLakes(tiles)

		assertLakeRim(t, tiles)
		assertEdgeColumnsClear(t, tiles)
	}
}

// assertLakeRim fails if any acid tile has a mountain among its in-bounds
// 3x3 neighbors.
func assertLakeRim(t *testing.T, tiles *Grid[Tile]) {
	t.Helper()
	for x := 0; x < tiles.Height(); x++ {
		for y := 0; y < tiles.Width(); y++ {
			if tiles.At(x, y) != TileAcid {
				continue
			}
			for nx := x - 1; nx <= x+1; nx++ {
				for ny := y - 1; ny <= y+1; ny++ {
					if tiles.InBounds(nx, ny) && tiles.At(nx, ny) == TileMountain {
						t.Errorf("Acid at (%d,%d) touches mountain at (%d,%d)", x, y, nx, ny)
					}
				}
			}
		}
	}
}

// assertEdgeColumnsClear fails if the first or last column holds acid.
func assertEdgeColumnsClear(t *testing.T, tiles *Grid[Tile]) {
	t.Helper()
	for x := 0; x < tiles.Height(); x++ {
		for _, y := range []int{0, tiles.Width() - 1} {
			if tiles.At(x, y) == TileAcid {
				t.Errorf("Edge column %d has acid at row %d", y, x)
			}
		}
	}
}
