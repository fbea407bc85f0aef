package terrain

// Rand is the randomness source used by every generation step.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Noise returns a height x width grid where each cell is true iff a uniform
// draw from [0, 100] is strictly below fillPercent.
func Noise(rng Rand, height, width, fillPercent int) *Grid[bool] {
	grid := NewGrid[bool](height, width)
	for x := 0; x < height; x++ {
		row := grid.Row(x)
		for y := range row {
			row[y] = rng.Intn(101) < fillPercent
		}
	}
	return grid
}
