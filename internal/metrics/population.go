package metrics

import "github.com/san-kum/lifeterm/internal/life"

type MeanPopulation struct {
	name    string
	samples int
	total   int
}

func NewMeanPopulation() *MeanPopulation {
	return &MeanPopulation{name: "mean_population"}
}

func (m *MeanPopulation) Name() string { return m.name }

func (m *MeanPopulation) Observe(gen int, g *life.Grid) {
	m.total += g.Population()
	m.samples++
}

func (m *MeanPopulation) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.total) / float64(m.samples)
}

func (m *MeanPopulation) Reset() {
	m.total = 0
	m.samples = 0
}

type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation {
	return &PeakPopulation{name: "peak_population"}
}

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) Observe(gen int, g *life.Grid) {
	if n := g.Population(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

// Churn is the mean number of cells that flipped per generation.
type Churn struct {
	name    string
	prev    *life.Grid
	changes int
	steps   int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) Observe(gen int, g *life.Grid) {
	if c.prev != nil {
		c.changes += g.Diff(c.prev)
		c.steps++
	}
	c.prev = g.Clone()
}

func (c *Churn) Value() float64 {
	if c.steps == 0 {
		return 0
	}
	return float64(c.changes) / float64(c.steps)
}

func (c *Churn) Reset() {
	c.prev = nil
	c.changes = 0
	c.steps = 0
}

// Extinction records the first generation with no live cells, or -1.
type Extinction struct {
	name string
	at   int
}

func NewExtinction() *Extinction {
	return &Extinction{name: "extinct_at", at: -1}
}

func (e *Extinction) Name() string { return e.name }

func (e *Extinction) Observe(gen int, g *life.Grid) {
	if e.at < 0 && g.Population() == 0 {
		e.at = gen
	}
}

func (e *Extinction) Value() float64 { return float64(e.at) }
func (e *Extinction) Reset()         { e.at = -1 }
