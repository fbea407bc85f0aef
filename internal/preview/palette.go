package preview

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/acidrun/internal/terrain"
)

// variantCount is the number of shades generated for each tile type.
const variantCount = 3

// DefaultColors are the base colors for each tile type.
var DefaultColors = map[terrain.Tile]string{
	terrain.TileBorder:   "#3A2A22",
	terrain.TileGround:   "#C8875A",
	terrain.TileMountain: "#8C5A3C",
	terrain.TileAcid:     "#7FDB3B",
}

// Palette maps tiles to a small set of shade variants.
type Palette struct {
	variants map[terrain.Tile][]tcell.Color
}

// NewPalette builds a palette from hex colors (e.g. "#FF0000").
// Each base color is expanded into darker variants blended in Lab space.
func NewPalette(colors map[terrain.Tile]string) (*Palette, error) {
	p := &Palette{variants: make(map[terrain.Tile][]tcell.Color, len(colors))}
	black := colorful.Color{}
	for tile, hex := range colors {
		base, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q for %s: %w", hex, tile, err)
		}
		shades := make([]tcell.Color, variantCount)
		for i := range shades {
			shades[i] = toTCell(base.BlendLab(black, float64(i)*0.12).Clamped())
		}
		p.variants[tile] = shades
	}
	return p, nil
}

// MustNewPalette builds a palette, panicking on error.
func MustNewPalette(colors map[terrain.Tile]string) *Palette {
	p, err := NewPalette(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the shade for tile at (x, y). The choice depends only on the
// position, so redrawing a map never flickers.
func (p *Palette) Color(tile terrain.Tile, x, y int) tcell.Color {
	shades, ok := p.variants[tile]
	if !ok || len(shades) == 0 {
		return tcell.ColorDefault
	}
	return shades[variantIndex(x, y, len(shades))]
}

// Style returns the cell style for tile at (x, y).
func (p *Palette) Style(tile terrain.Tile, x, y int) tcell.Style {
	return tcell.StyleDefault.
		Foreground(p.Color(tile, x, y)).
		Background(tcell.ColorBlack)
}

func variantIndex(x, y, n int) int {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[0:8], uint64(x))
	binary.LittleEndian.PutUint64(key[8:16], uint64(y))
	return int(xxhash.Sum64(key[:]) % uint64(n))
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
