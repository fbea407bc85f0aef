package terrain

// wallThreshold is the number of filled cells in a 3x3 window that must be
// exceeded for the center to become filled.
const wallThreshold = 4

// Smooth applies iterations passes of the wall-majority rule to grid in place.
//
// Each pass scans rows top to bottom and columns left to right, writing the
// new value straight back into grid, so cells later in the scan see the
// updated state of earlier ones. Off-grid neighbors count as filled, which
// pulls the edges of a map towards solid wall.
func Smooth(grid *Grid[bool], iterations int) {
	for i := 0; i < iterations; i++ {
		smoothPass(grid)
	}
}

func smoothPass(grid *Grid[bool]) {
	for x := 0; x < grid.height; x++ {
		for y := 0; y < grid.width; y++ {
			grid.Set(x, y, surroundingWalls(grid, x, y) > wallThreshold)
		}
	}
}

// surroundingWalls counts filled cells in the 3x3 window centered on (x, y),
// the center included.
func surroundingWalls(grid *Grid[bool], x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if !grid.InBounds(nx, ny) || grid.At(nx, ny) {
				count++
			}
		}
	}
	return count
}
