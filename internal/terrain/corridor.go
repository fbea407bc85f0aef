package terrain

// axis selects the direction a corridor travels in.
type axis int

const (
	alongRows    axis = iota // vertical corridor, walks down the rows
	alongColumns             // horizontal corridor, walks across the columns
)

// CorridorCarver walks randomized corridors through a region and clears them
// to ground. Acid is never overwritten, so corridors stop at lake shores
// rather than filling lakes in.
type CorridorCarver struct {
	Rand         Rand
	MaxRunLength int // Longest straight run before a sideways jog
}

// CarveVertical carves a corridor of the given width from row 0 to the last
// row, starting at originColumn.
func (c CorridorCarver) CarveVertical(tiles *Grid[Tile], originColumn, width int) {
	c.carve(tiles, alongRows, originColumn, width)
}

// CarveHorizontal carves a corridor of the given width from column 0 to the
// last column, starting at originRow.
func (c CorridorCarver) CarveHorizontal(tiles *Grid[Tile], originRow, width int) {
	c.carve(tiles, alongColumns, originRow, width)
}

func (c CorridorCarver) carve(tiles *Grid[Tile], a axis, origin, width int) {
	length, span := tiles.height, tiles.width
	if a == alongColumns {
		length, span = tiles.width, tiles.height
	}

	lateral := origin
	along := 0
	for along < length {
		run := 1 + c.Rand.Intn(c.MaxRunLength)
		for i := 0; i < run && along < length; i++ {
			clearBand(tiles, a, along, lateral, width, span)
			along++
		}

		lateral = jog(lateral, c.Rand.Intn(2) == 1, span)

		// Stitch the jog at the row (or column) just left behind so the
		// corridor never connects only diagonally.
		clearBand(tiles, a, along-1, lateral, width, span)
	}
}

// jog moves the lateral cursor one step, reversing direction instead of
// leaving [1, span).
func jog(pos int, forward bool, span int) int {
	if forward {
		if pos+1 < span {
			return pos + 1
		}
		return pos - 1
	}
	if pos-1 > 0 {
		return pos - 1
	}
	return pos + 1
}

// clearBand sets the cells [lateral, lateral+width) at position along to
// ground, clipped to [0, span). Acid cells are left untouched.
func clearBand(tiles *Grid[Tile], a axis, along, lateral, width, span int) {
	for l := lateral; l < lateral+width && l < span; l++ {
		if l < 0 {
			continue
		}
		x, y := along, l
		if a == alongColumns {
			x, y = l, along
		}
		if tiles.At(x, y) != TileAcid {
			tiles.Set(x, y, TileGround)
		}
	}
}
