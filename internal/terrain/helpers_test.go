package terrain

import "fmt"

// sequenceRand replays a fixed list of draws, reduced modulo n.
type sequenceRand struct {
	values []int
	next   int
}

func (s *sequenceRand) Intn(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

// boolGrid builds a grid from rows of '#' (filled) and '.' (empty).
func boolGrid(rows ...string) *Grid[bool] {
	g := NewGrid[bool](len(rows), len(rows[0]))
	for x, row := range rows {
		for y, c := range row {
			g.Set(x, y, c == '#')
		}
	}
	return g
}

// tileGrid builds a grid from rows of tile runes.
func tileGrid(rows ...string) *Grid[Tile] {
	g := NewGrid[Tile](len(rows), len(rows[0]))
	for x, row := range rows {
		for y, c := range row {
			switch c {
			case '.':
				g.Set(x, y, TileGround)
			case '^':
				g.Set(x, y, TileMountain)
			case '~':
				g.Set(x, y, TileAcid)
			case '#':
				g.Set(x, y, TileBorder)
			default:
				panic(fmt.Sprintf("unknown tile rune %q", c))
			}
		}
	}
	return g
}

// fill sets every cell of g to v.
func fill[T any](g *Grid[T], v T) {
	for x := 0; x < g.Height(); x++ {
		row := g.Row(x)
		for y := range row {
			row[y] = v
		}
	}
}

// reachable flood-fills orthogonally from every start cell accepted by start,
// moving only through cells accepted by pass, and reports whether any cell
// accepted by goal was reached.
func reachable(g *Grid[Tile], start, goal func(x, y int) bool, pass func(Tile) bool) bool {
	type cell struct{ x, y int }
	seen := NewGrid[bool](g.Height(), g.Width())
	var queue []cell

	for x := 0; x < g.Height(); x++ {
		for y := 0; y < g.Width(); y++ {
			if start(x, y) && pass(g.At(x, y)) {
				seen.Set(x, y, true)
				queue = append(queue, cell{x, y})
			}
		}
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if goal(c.x, c.y) {
			return true
		}
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := c.x+d[0], c.y+d[1]
			if g.InBounds(nx, ny) && !seen.At(nx, ny) && pass(g.At(nx, ny)) {
				seen.Set(nx, ny, true)
				queue = append(queue, cell{nx, ny})
			}
		}
	}
	return false
}

func isGround(t Tile) bool { return t == TileGround }
func notAcid(t Tile) bool  { return t != TileAcid }
