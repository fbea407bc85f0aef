package board

import (
	"errors"
	"sort"

	"github.com/samdwyer/acidrun/internal/terrain"
)

// ErrInvalidChunkSize is returned for non-positive oxygen chunk sizes.
var ErrInvalidChunkSize = errors.New("board: oxygen chunk size must be positive")

// Pickup is an oxygen tank lying on the board.
type Pickup struct {
	At     Point
	Amount int
}

// PlaceOxygen scatters one tank of amount on a random ground tile inside each
// chunkSize x chunkSize window of the board. Windows without ground get none.
// Returns the number of tanks placed.
func (b *Board) PlaceOxygen(rng terrain.Rand, chunkSize, amount int) (int, error) {
	if chunkSize <= 0 {
		return 0, ErrInvalidChunkSize
	}

	placed := 0
	// The final partial band of rows is skipped; the end strip needs no tanks.
	for x := 0; x < b.Height-chunkSize; x += chunkSize {
		for y := 0; y < b.Width; y += chunkSize {
			ground := b.groundBetween(Point{x, y}, Point{x + chunkSize, y + chunkSize})
			if len(ground) == 0 {
				continue
			}
			p := ground[rng.Intn(len(ground))]
			b.pickups[p] = amount
			placed++
		}
	}
	return placed, nil
}

// groundBetween returns ground tiles in [from, to), row-major, clipped to the
// board.
func (b *Board) groundBetween(from, to Point) []Point {
	var ground []Point
	for x := from.X; x < to.X && x < b.Height; x++ {
		for y := from.Y; y < to.Y && y < b.Width; y++ {
			if b.tiles.At(x, y) == terrain.TileGround {
				ground = append(ground, Point{x, y})
			}
		}
	}
	return ground
}

// OxygenAt returns the amount of oxygen lying at p, if any.
func (b *Board) OxygenAt(p Point) (int, bool) {
	amount, ok := b.pickups[p]
	return amount, ok
}

// Collect removes the pickup at p and returns its amount.
func (b *Board) Collect(p Point) (int, bool) {
	amount, ok := b.pickups[p]
	if ok {
		delete(b.pickups, p)
	}
	return amount, ok
}

// Pickups returns every remaining pickup in row-major order.
func (b *Board) Pickups() []Pickup {
	pickups := make([]Pickup, 0, len(b.pickups))
	for p, amount := range b.pickups {
		pickups = append(pickups, Pickup{At: p, Amount: amount})
	}
	sort.Slice(pickups, func(i, j int) bool {
		a, c := pickups[i].At, pickups[j].At
		if a.X != c.X {
			return a.X < c.X
		}
		return a.Y < c.Y
	})
	return pickups
}
