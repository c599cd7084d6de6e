package metrics

import (
	"testing"

	"github.com/san-kum/lifeterm/internal/life"
)

func grid(t *testing.T, pattern string) *life.Grid {
	t.Helper()
	g, err := life.Seed(pattern, 6, 6, 0, nil)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return g
}

func TestMeanPopulation(t *testing.T) {
	m := NewMeanPopulation()
	if m.Value() != 0 {
		t.Error("no samples should give 0")
	}

	m.Observe(0, grid(t, "blinker"))
	m.Observe(1, grid(t, "empty"))
	if m.Value() != 1.5 {
		t.Errorf("expected 1.5, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear samples")
	}
}

func TestPeakPopulation(t *testing.T) {
	p := NewPeakPopulation()
	p.Observe(0, grid(t, "blinker"))
	p.Observe(1, grid(t, "glider"))
	p.Observe(2, grid(t, "empty"))
	if p.Value() != 5 {
		t.Errorf("expected peak 5, got %f", p.Value())
	}
}

func TestChurn(t *testing.T) {
	c := NewChurn()
	g := grid(t, "blinker")

	c.Observe(0, g)
	if c.Value() != 0 {
		t.Error("a single sample has no churn")
	}

	g.Tick()
	c.Observe(1, g)
	// Vertical to horizontal bar: two cells die and two are born.
	if c.Value() != 4 {
		t.Errorf("expected churn 4, got %f", c.Value())
	}

	c.Reset()
	if c.Value() != 0 || c.prev != nil {
		t.Error("reset should clear state")
	}
}

func TestExtinction(t *testing.T) {
	e := NewExtinction()
	if e.Value() != -1 {
		t.Errorf("expected -1 before extinction, got %f", e.Value())
	}

	g, _ := life.FromCells(3, 3, []life.Cell{
		life.Dead, life.Dead, life.Dead,
		life.Dead, life.Alive, life.Dead,
		life.Dead, life.Dead, life.Dead,
	})
	e.Observe(0, g)
	g.Tick()
	e.Observe(1, g)
	g.Tick()
	e.Observe(2, g)
	if e.Value() != 1 {
		t.Errorf("expected extinction at 1, got %f", e.Value())
	}
}

func TestDefault(t *testing.T) {
	names := map[string]bool{}
	for _, m := range Default() {
		names[m.Name()] = true
	}
	for _, want := range []string{"mean_population", "peak_population", "churn", "extinct_at"} {
		if !names[want] {
			t.Errorf("missing metric %s", want)
		}
	}
}
