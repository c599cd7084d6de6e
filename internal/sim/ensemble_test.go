package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/san-kum/lifeterm/internal/life"
)

func TestEnsembleRun(t *testing.T) {
	factory := func(seed int64) (*life.Grid, error) {
		return life.New(12, 12, rand.New(rand.NewSource(seed)))
	}

	e := NewEnsemble(factory, 4, 100).WithMetrics(func() []Metric {
		return []Metric{&testMetric{}}
	})

	results, err := e.Run(context.Background(), Config{Generations: 15})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if len(r.Populations) != 16 {
			t.Errorf("run %d: expected 16 samples, got %d", i, len(r.Populations))
		}
		if _, ok := r.Metrics["test"]; !ok {
			t.Errorf("run %d: metric missing", i)
		}
	}

	// Same seeds, same series.
	again, err := e.Run(context.Background(), Config{Generations: 15})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	for i := range results {
		for j := range results[i].Populations {
			if results[i].Populations[j] != again[i].Populations[j] {
				t.Fatalf("run %d is not reproducible", i)
			}
		}
	}
}

func TestEnsembleFactoryError(t *testing.T) {
	boom := errors.New("boom")
	e := NewEnsemble(func(seed int64) (*life.Grid, error) { return nil, boom }, 2, 0)
	if _, err := e.Run(context.Background(), Config{Generations: 1}); !errors.Is(err, boom) {
		t.Errorf("expected factory error, got %v", err)
	}
}
