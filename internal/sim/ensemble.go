package sim

import (
	"context"
	"sync"

	"github.com/san-kum/lifeterm/internal/life"
)

// GridFactory seeds one board of an ensemble.
type GridFactory func(seed int64) (*life.Grid, error)

// Ensemble runs independent boards in parallel, one goroutine per board.
// Each board is still advanced by a single goroutine.
type Ensemble struct {
	factory   GridFactory
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory GridFactory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

// WithMetrics sets a constructor called once per run, so runs never share
// metric state.
func (e *Ensemble) WithMetrics(fn func() []Metric) *Ensemble {
	e.metrics = fn
	return e
}

// Run returns results indexed by run; run i uses seed seedStart+i.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			g, err := e.factory(e.seedStart + int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}

			s := New()
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, g, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
