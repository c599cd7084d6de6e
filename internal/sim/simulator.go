package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lifeterm/internal/life"
)

// Simulator advances a board without a terminal, collecting metrics.
type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run ticks g for cfg.Generations generations. g is advanced in place. On
// cancellation the partial result is returned with ctx.Err().
func (s *Simulator) Run(ctx context.Context, g *life.Grid, cfg Config) (*Result, error) {
	if err := s.validateConfig(g, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Populations: make([]int, 0, cfg.Generations+1),
		Metrics:     make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	seen := make(map[uint64]int)
	record := func(gen int) bool {
		for _, m := range s.metrics {
			m.Observe(gen, g)
		}
		for _, obs := range s.observers {
			obs.OnGeneration(gen, g)
		}
		result.Populations = append(result.Populations, g.Population())

		if cfg.CycleWindow == 0 || result.Period != 0 {
			return false
		}
		h := g.Hash()
		if prev, ok := seen[h]; ok && gen-prev <= cfg.CycleWindow {
			result.Period = gen - prev
			result.CycleStart = prev
			return cfg.StopOnCycle
		}
		seen[h] = gen
		return false
	}

	start := g.Generation()
	record(0)

	for i := 1; i <= cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		g.Tick()
		result.Generations = g.Generation() - start
		if record(i) {
			break
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Simulator) finish(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateConfig(g *life.Grid, cfg Config) error {
	if g == nil {
		return fmt.Errorf("grid must not be nil")
	}
	if cfg.Generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", cfg.Generations)
	}
	if cfg.CycleWindow < 0 {
		return fmt.Errorf("cycle window must not be negative, got %d", cfg.CycleWindow)
	}
	return nil
}
