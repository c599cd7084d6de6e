package sim

import "github.com/san-kum/lifeterm/internal/life"

// Metric accumulates a value over the generations of a run.
type Metric interface {
	Name() string
	Observe(gen int, g *life.Grid)
	Value() float64
	Reset()
}

// Observer is notified after every generation.
type Observer interface {
	OnGeneration(gen int, g *life.Grid)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(gen int, g *life.Grid)

func (f ObserverFunc) OnGeneration(gen int, g *life.Grid) { f(gen, g) }

// Config controls a headless run.
type Config struct {
	Generations int
	// StopOnCycle ends the run as soon as a repeated board is found.
	StopOnCycle bool
	// CycleWindow is the longest period looked for. 0 disables detection.
	CycleWindow int
}

func DefaultConfig() Config {
	return Config{
		Generations: 500,
		CycleWindow: 64,
	}
}

// Result holds the population series of a headless run. Populations[0] is
// the seed generation.
type Result struct {
	Populations []int
	Generations int
	Metrics     map[string]float64
	// Period is the detected cycle length, 0 when none was found.
	Period int
	// CycleStart is the first generation of the detected cycle.
	CycleStart int
}
