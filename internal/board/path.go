package board

import (
	"errors"
	"fmt"
)

var (
	// ErrPathTooShort is returned for paths with fewer than two points.
	ErrPathTooShort = errors.New("board: path needs at least two points")
	// ErrPathGap is returned when consecutive points are not orthogonal neighbors.
	ErrPathGap = errors.New("board: path points are not adjacent")
	// ErrPathBlocked is returned when a path enters an unwalkable tile.
	ErrPathBlocked = errors.New("board: path crosses an unwalkable tile")
)

// ValidatePath checks that path is a walk a unit can follow: at least two
// points, each step moves to an orthogonal neighbor, and every point is
// walkable.
func (b *Board) ValidatePath(path []Point) error {
	if len(path) <= 1 {
		return ErrPathTooShort
	}
	for i, p := range path {
		if i > 0 && !adjacent(path[i-1], p) {
			return fmt.Errorf("%w: step %d from %v to %v", ErrPathGap, i, path[i-1], p)
		}
		if !b.IsPassable(p) {
			return fmt.Errorf("%w: %s at %v (step %d)", ErrPathBlocked, b.Tile(p), p, i)
		}
	}
	return nil
}

// PathCost returns the total cost of walking path, excluding the tile the
// walk starts on.
func (b *Board) PathCost(path []Point) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += b.Cost(path[i])
	}
	return cost
}

// Walk validates path and crosses every tile after the first, flattening any
// mountain on the way. Returns the cost paid.
func (b *Board) Walk(path []Point) (int, error) {
	if err := b.ValidatePath(path); err != nil {
		return 0, err
	}
	cost := b.PathCost(path)
	for _, p := range path[1:] {
		b.Cross(p)
	}
	return cost, nil
}

func adjacent(a, b Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
