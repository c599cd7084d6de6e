package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTcell(t *testing.T) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	ts, err := NewTcellScreen(sim, DefaultPalette())
	if err != nil {
		t.Fatalf("NewTcellScreen failed: %v", err)
	}
	t.Cleanup(func() { ts.Close() })
	return ts, sim
}

func TestTcell_DrawsCells(t *testing.T) {
	ts, sim := newSimTcell(t)

	if err := ts.Enter(12, 6); err != nil {
		t.Fatalf("Enter failed: %v", err)
	}
	ts.SetCell(3, 2, true)
	ts.SetCell(4, 2, false)
	if err := ts.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	r, _, style, _ := sim.GetContent(3, 2)
	if r != glyphRune {
		t.Errorf("expected block glyph, got %q", r)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.PaletteColor(5) {
		t.Errorf("expected alive foreground palette 5, got %v", fg)
	}

	_, _, style, _ = sim.GetContent(4, 2)
	fg, bg, _ := style.Decompose()
	if fg != bg {
		t.Errorf("dead cell should blend into the background: fg=%v bg=%v", fg, bg)
	}

	if err := ts.Exit(); err != nil {
		t.Fatalf("Exit failed: %v", err)
	}
	if err := ts.Exit(); err != nil {
		t.Errorf("second Exit should be a no-op, got %v", err)
	}
}

func TestTcell_CapturesOriginalSize(t *testing.T) {
	ts, _ := newSimTcell(t)
	cols, rows := ts.Size()
	if cols <= 0 || rows <= 0 {
		t.Errorf("expected captured size, got %dx%d", cols, rows)
	}
}

func TestTcellColor(t *testing.T) {
	if c := tcellColor("5"); c != tcell.PaletteColor(5) {
		t.Errorf("numeric color: got %v", c)
	}
	if c := tcellColor("#ff0000"); c != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("hex color: got %v", c)
	}
}
