// Package preview draws generated maps for inspection while tuning levels.
package preview

import (
	"bufio"
	"io"

	"github.com/samdwyer/acidrun/internal/terrain"
)

// Fprint writes tiles to w, one line per row, using each tile's rune.
func Fprint(w io.Writer, tiles *terrain.Grid[terrain.Tile]) error {
	bw := bufio.NewWriter(w)
	for x := 0; x < tiles.Height(); x++ {
		for _, t := range tiles.Row(x) {
			if _, err := bw.WriteRune(t.Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
