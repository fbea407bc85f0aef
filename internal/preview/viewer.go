package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/acidrun/internal/terrain"
)

// Viewer shows a scrollable window onto a map. Map rows run down the screen
// and map columns across it.
type Viewer struct {
	screen   *Screen
	tiles    *terrain.Grid[terrain.Tile]
	palette  *Palette
	checksum uint64

	top, left int
	running   bool
}

// NewViewer creates a viewer for tiles on screen.
func NewViewer(screen *Screen, tiles *terrain.Grid[terrain.Tile], palette *Palette) *Viewer {
	return &Viewer{
		screen:   screen,
		tiles:    tiles,
		palette:  palette,
		checksum: terrain.Checksum(tiles),
		running:  true,
	}
}

// Run draws the map and handles input until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	for v.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		v.Draw()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil
		case *tcell.EventKey:
			v.HandleKey(ev)
		case *tcell.EventResize:
			v.screen.Sync()
			v.clamp()
		}
	}
	return nil
}

// Draw renders the visible part of the map plus a status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.viewport()

	for sy := 0; sy < height; sy++ {
		x := v.top + sy
		if x >= v.tiles.Height() {
			break
		}
		for sx := 0; sx < width; sx++ {
			y := v.left + sx
			if y >= v.tiles.Width() {
				break
			}
			tile := v.tiles.At(x, y)
			v.screen.SetContent(sx, sy, tile.Rune(), nil, v.palette.Style(tile, x, y))
		}
	}

	v.drawStatus(height)
	v.screen.Show()
}

func (v *Viewer) drawStatus(row int) {
	last := min(v.top+row, v.tiles.Height())
	msg := fmt.Sprintf("rows %d-%d/%d  %016x  arrows scroll, q quits",
		v.top, last, v.tiles.Height(), v.checksum)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		v.screen.SetContent(i, row, ch, nil, style)
	}
}

// HandleKey processes a single key press.
func (v *Viewer) HandleKey(ev *tcell.EventKey) {
	_, page := v.viewport()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyUp:
		v.ScrollBy(-1, 0)
	case tcell.KeyDown:
		v.ScrollBy(1, 0)
	case tcell.KeyLeft:
		v.ScrollBy(0, -1)
	case tcell.KeyRight:
		v.ScrollBy(0, 1)
	case tcell.KeyPgUp:
		v.ScrollBy(-page, 0)
	case tcell.KeyPgDn:
		v.ScrollBy(page, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		}
	}
}

// ScrollBy moves the viewport, keeping it on the map.
func (v *Viewer) ScrollBy(rows, cols int) {
	v.top += rows
	v.left += cols
	v.clamp()
}

// Offset returns the map row and column shown in the top-left corner.
func (v *Viewer) Offset() (row, col int) {
	return v.top, v.left
}

// Running reports whether the viewer is still accepting input.
func (v *Viewer) Running() bool {
	return v.running
}

// viewport returns the map area size, leaving the last line for status.
func (v *Viewer) viewport() (width, height int) {
	width, height = v.screen.Size()
	return width, max(height-1, 0)
}

func (v *Viewer) clamp() {
	width, height := v.viewport()
	v.top = max(0, min(v.top, v.tiles.Height()-height))
	v.left = max(0, min(v.left, v.tiles.Width()-width))
}
