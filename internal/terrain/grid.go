package terrain

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Grid is a height x width array stored in row-major order.
// The first coordinate (x) is the row along the depth axis, the second (y) is
// the column along the lateral axis.
type Grid[T any] struct {
	height int
	width  int
	cells  []T
}

// NewGrid allocates a grid with every cell set to the zero value of T.
// Non-positive dimensions are a programming error and panic.
func NewGrid[T any](height, width int) *Grid[T] {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("terrain: invalid grid size %dx%d", height, width))
	}
	return &Grid[T]{
		height: height,
		width:  width,
		cells:  make([]T, height*width),
	}
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.height && y >= 0 && y < g.width
}

// At returns the value at row x, column y.
func (g *Grid[T]) At(x, y int) T {
	return g.cells[g.index(x, y)]
}

// Set stores v at row x, column y.
func (g *Grid[T]) Set(x, y int, v T) {
	g.cells[g.index(x, y)] = v
}

// Row returns the backing slice of row x. Writes go through to the grid.
func (g *Grid[T]) Row(x int) []T {
	if x < 0 || x >= g.height {
		panic(fmt.Sprintf("terrain: row %d out of range [0,%d)", x, g.height))
	}
	return g.cells[x*g.width : (x+1)*g.width]
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{height: g.height, width: g.width, cells: cells}
}

func (g *Grid[T]) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("terrain: cell (%d,%d) out of range %dx%d", x, y, g.height, g.width))
	}
	return x*g.width + y
}

// Checksum returns a 64-bit fingerprint of the grid's size and tiles.
// Two grids with identical dimensions and contents always share a checksum.
func Checksum(g *Grid[Tile]) uint64 {
	d := xxhash.New()

	var header [16]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(g.height))
	binary.LittleEndian.PutUint64(header[8:16], uint64(g.width))
	_, _ = d.Write(header[:])

	buf := make([]byte, g.width)
	for x := 0; x < g.height; x++ {
		for y, t := range g.Row(x) {
			buf[y] = byte(t)
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
