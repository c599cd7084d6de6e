package optim

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Evaluate runs one trial and returns its metrics.
type Evaluate func(ctx context.Context, params map[string]float64) (map[string]float64, error)

// Trial is one evaluated parameter combination.
type Trial struct {
	Params map[string]float64
	Value  float64
}

// GridSearch tries every combination of the given parameter values.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	maximize   bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Maximize makes Search prefer larger metric values.
func (g *GridSearch) Maximize() *GridSearch {
	g.maximize = true
	return g
}

// Search evaluates the full grid and returns the best trial along with
// every trial in evaluation order. A failed trial aborts the search.
func (g *GridSearch) Search(ctx context.Context, eval Evaluate, metricName string) (Trial, []Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Trial{}, nil, fmt.Errorf("got %d parameter names for %d ranges", len(g.paramNames), len(g.ranges))
	}

	var trials []Trial
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), eval, metricName, &trials); err != nil {
		return Trial{}, trials, err
	}
	if len(trials) == 0 {
		return Trial{}, nil, fmt.Errorf("empty search grid")
	}

	best := Trial{Value: math.Inf(1)}
	if g.maximize {
		best.Value = math.Inf(-1)
	}
	for _, t := range trials {
		if (g.maximize && t.Value > best.Value) || (!g.maximize && t.Value < best.Value) {
			best = t
		}
	}
	return best, trials, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	eval Evaluate,
	metricName string,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		metrics, err := eval(ctx, current)
		if err != nil {
			return fmt.Errorf("trial %v: %w", current, err)
		}
		val, ok := metrics[metricName]
		if !ok {
			return fmt.Errorf("unknown metric %q (available: %v)", metricName, metricNames(metrics))
		}
		params := make(map[string]float64, len(current))
		for k, v := range current {
			params[k] = v
		}
		*trials = append(*trials, Trial{Params: params, Value: val})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		current[paramName] = val
		if err := g.searchRecursive(ctx, depth+1, current, eval, metricName, trials); err != nil {
			return err
		}
	}
	delete(current, paramName)
	return nil
}

func metricNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
