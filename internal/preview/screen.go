package preview

import "github.com/gdamore/tcell/v2"

// backgroundStyle fills cells the map does not cover.
var backgroundStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is an initialized terminal the viewer draws on.
type Screen struct {
	tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s. Tests pass a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(backgroundStyle)
	s.Clear()
	return &Screen{Screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.Fini()
}
