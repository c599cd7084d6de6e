package viz

import (
	"fmt"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/term"
)

// DefaultMargin is added to both board dimensions when sizing the terminal.
const DefaultMargin = 3

// View renders a fixed-size board onto a screen.
type View struct {
	screen        term.Screen
	width, height int
	margin        int
	frames        int
}

func New(screen term.Screen, width, height, margin int) (*View, error) {
	if screen == nil {
		return nil, fmt.Errorf("viz: nil screen")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("viz: invalid board size %dx%d", width, height)
	}
	if margin < 0 {
		return nil, fmt.Errorf("viz: margin must not be negative, got %d", margin)
	}
	return &View{screen: screen, width: width, height: height, margin: margin}, nil
}

// Prepare enters the drawing state sized to the board plus margin.
func (v *View) Prepare() error {
	return v.screen.Enter(v.width+v.margin, v.height+v.margin)
}

// Render queues every cell of g at (col, row) and flushes exactly once.
func (v *View) Render(g *life.Grid) error {
	if g.Width() != v.width || g.Height() != v.height {
		return fmt.Errorf("%w: board %dx%d does not match view %dx%d",
			term.ErrRender, g.Width(), g.Height(), v.width, v.height)
	}
	cells := g.Cells()
	for row := 0; row < v.height; row++ {
		for col := 0; col < v.width; col++ {
			v.screen.SetCell(col, row, cells[g.Index(row, col)] == life.Alive)
		}
	}
	if err := v.screen.Flush(); err != nil {
		return err
	}
	v.frames++
	return nil
}

// Reset restores the terminal captured by the screen.
func (v *View) Reset() error {
	return v.screen.Exit()
}

// Frames reports how many frames were flushed.
func (v *View) Frames() int { return v.frames }
