package metrics

import "github.com/san-kum/lifeterm/internal/sim"

// Default returns fresh instances of every population metric.
func Default() []sim.Metric {
	return []sim.Metric{
		NewMeanPopulation(),
		NewPeakPopulation(),
		NewChurn(),
		NewExtinction(),
	}
}
