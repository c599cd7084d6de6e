package term

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

var glyphRune = []rune(Glyph)[0]

// Tcell draws frames on a tcell screen. The screen is initialized once and
// kept suspended outside Enter/Exit so the terminal is in normal mode
// between frames.
type Tcell struct {
	screen   tcell.Screen
	origCols int
	origRows int
	bg       tcell.Style
	alive    tcell.Style
	dead     tcell.Style
	active   bool
	closed   bool
}

// NewTcell opens the controlling terminal through tcell.
func NewTcell(palette Palette) (*Tcell, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, opErr(ErrTerminalInit, "new screen", err)
	}
	return NewTcellScreen(s, palette)
}

// NewTcellScreen wraps an uninitialized screen, such as a simulation screen.
func NewTcellScreen(s tcell.Screen, palette Palette) (*Tcell, error) {
	if err := s.Init(); err != nil {
		return nil, opErr(ErrTerminalInit, "init", err)
	}
	cols, rows := s.Size()

	bg := tcellColor(palette.Background)
	t := &Tcell{
		screen:   s,
		origCols: cols,
		origRows: rows,
		bg:       tcell.StyleDefault.Background(bg),
		alive:    tcell.StyleDefault.Foreground(tcellColor(palette.Alive)).Background(bg),
		dead:     tcell.StyleDefault.Foreground(bg).Background(bg),
	}
	if err := s.Suspend(); err != nil {
		s.Fini()
		return nil, opErr(ErrTerminalInit, "suspend", err)
	}
	return t, nil
}

// tcellColor maps a palette entry onto tcell: numbers are palette indexes,
// anything else goes through tcell's name and hex lookup.
func tcellColor(s string) tcell.Color {
	if n, err := strconv.Atoi(s); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}

func (t *Tcell) Size() (int, int) { return t.origCols, t.origRows }

func (t *Tcell) Enter(cols, rows int) error {
	if t.active {
		return nil
	}
	if err := t.screen.Resume(); err != nil {
		return opErr(ErrTerminalInit, "resume", err)
	}
	t.active = true
	t.screen.SetSize(cols, rows)
	t.screen.SetStyle(t.bg)
	t.screen.Clear()
	t.screen.HideCursor()
	return nil
}

func (t *Tcell) SetCell(x, y int, alive bool) {
	style := t.dead
	if alive {
		style = t.alive
	}
	t.screen.SetContent(x, y, glyphRune, nil, style)
}

func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) Exit() error {
	if !t.active {
		return nil
	}
	t.active = false
	t.screen.SetSize(t.origCols, t.origRows)
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	t.screen.ShowCursor(0, 0)
	t.screen.Show()
	return opErr(ErrTerminalInit, "suspend", t.screen.Suspend())
}

func (t *Tcell) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	err := t.Exit()
	t.screen.Fini()
	return err
}
