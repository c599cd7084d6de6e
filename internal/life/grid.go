package life

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// DefaultDensity is the probability that a randomly seeded cell starts Alive.
const DefaultDensity = 0.5

// Grid is a width×height board stored row-major, wrapped at every edge.
type Grid struct {
	width, height int
	cells         []Cell
	generation    int
}

// New returns a board where each cell is Alive with probability 0.5.
// A nil rng seeds from the wall clock.
func New(width, height int, rng *rand.Rand) (*Grid, error) {
	return NewWithDensity(width, height, DefaultDensity, rng)
}

// NewWithDensity returns a randomly seeded board with the given Alive probability.
func NewWithDensity(width, height int, density float64, rng *rand.Rand) (*Grid, error) {
	g, err := newEmpty(width, height)
	if err != nil {
		return nil, err
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidDensity, density)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := range g.cells {
		if rng.Float64() < density {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// FromCells builds a board from a row-major cell slice. The slice is copied.
func FromCells(width, height int, cells []Cell) (*Grid, error) {
	g, err := newEmpty(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrSizeMismatch, width*height, len(cells))
	}
	copy(g.cells, cells)
	return g, nil
}

func newEmpty(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) Generation() int { return g.generation }

// Index maps (row, col) to a flat position. Callers keep row in [0, height)
// and col in [0, width).
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Cell returns the value at (row, col).
func (g *Grid) Cell(row, col int) Cell {
	return g.cells[g.Index(row, col)]
}

// Set overwrites the value at (row, col). Used for seeding only.
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.Index(row, col)] = c
}

// Cells returns the current generation. The slice must not be modified.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// LiveNeighborCount sums the eight wrapped neighbors of (row, col).
// Offsets height-1 and width-1 stand in for -1 so the arithmetic stays
// non-negative before the modulo.
func (g *Grid) LiveNeighborCount(row, col int) int {
	count := 0
	for _, dr := range [3]int{g.height - 1, 0, 1} {
		for _, dc := range [3]int{g.width - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % g.height
			c := (col + dc) % g.width
			count += int(g.cells[g.Index(r, c)])
		}
	}
	return count
}

// Tick advances the board by one generation. Every cell is evaluated against
// the pre-tick board; the new board replaces it only after all cells are done.
func (g *Grid) Tick() {
	next := make([]Cell, len(g.cells))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.Index(row, col)
			next[idx] = Next(g.cells[idx], g.LiveNeighborCount(row, col))
		}
	}
	g.cells = next
	g.generation++
}

// Population counts Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Diff counts positions whose value differs from other. Boards of different
// size are entirely different.
func (g *Grid) Diff(other *Grid) int {
	if other == nil || other.width != g.width || other.height != g.height {
		return len(g.cells)
	}
	n := 0
	for i, c := range g.cells {
		if other.cells[i] != c {
			n++
		}
	}
	return n
}

// Equal reports whether both boards have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	return other != nil && other.width == g.width && other.height == g.height && g.Diff(other) == 0
}

// Clone returns an independent copy, generation counter included.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:      g.width,
		height:     g.height,
		cells:      make([]Cell, len(g.cells)),
		generation: g.generation,
	}
	copy(c.cells, g.cells)
	return c
}

// Hash returns an FNV-64a digest of the cells, for cycle detection.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return h.Sum64()
}

// String renders the board with '#' for Alive and '.' for Dead, one line per row.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.Cell(row, col) == Alive {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
