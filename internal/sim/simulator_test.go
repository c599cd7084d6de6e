package sim

import (
	"context"
	"testing"

	"github.com/san-kum/lifeterm/internal/life"
)

func blinker(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.Seed("blinker", 6, 6, 0, nil)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return g
}

type testMetric struct {
	count int
	sum   int
}

func (m *testMetric) Name() string { return "test" }
func (m *testMetric) Observe(gen int, g *life.Grid) {
	m.count++
	m.sum += g.Population()
}
func (m *testMetric) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.count)
}
func (m *testMetric) Reset() {
	m.count = 0
	m.sum = 0
}

func TestSimulatorRun(t *testing.T) {
	sim := New()
	metric := &testMetric{}
	sim.AddMetric(metric)

	g := blinker(t)
	result, err := sim.Run(context.Background(), g, Config{Generations: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Populations) != 11 {
		t.Errorf("expected 11 population samples, got %d", len(result.Populations))
	}
	if result.Generations != 10 || g.Generation() != 10 {
		t.Errorf("expected 10 generations, got %d (grid %d)", result.Generations, g.Generation())
	}
	for i, p := range result.Populations {
		if p != 3 {
			t.Errorf("generation %d: blinker population %d, want 3", i, p)
		}
	}
	if metric.count != 11 {
		t.Errorf("expected 11 observations, got %d", metric.count)
	}
	if result.Metrics["test"] != 3 {
		t.Errorf("expected mean 3, got %f", result.Metrics["test"])
	}
	if result.Period != 0 {
		t.Errorf("cycle detection disabled, got period %d", result.Period)
	}
}

func TestSimulatorCycleDetection(t *testing.T) {
	sim := New()

	result, err := sim.Run(context.Background(), blinker(t), Config{Generations: 20, CycleWindow: 8})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Period != 2 || result.CycleStart != 0 {
		t.Errorf("expected period 2 from generation 0, got period %d start %d", result.Period, result.CycleStart)
	}
	if result.Generations != 20 {
		t.Errorf("run should continue without StopOnCycle, got %d generations", result.Generations)
	}

	result, err = sim.Run(context.Background(), blinker(t), Config{Generations: 20, CycleWindow: 8, StopOnCycle: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Generations != 2 {
		t.Errorf("expected stop after 2 generations, got %d", result.Generations)
	}
}

func TestSimulatorStillLife(t *testing.T) {
	g, _ := life.Seed("empty", 5, 5, 0, nil)
	result, err := New().Run(context.Background(), g, Config{Generations: 5, CycleWindow: 4, StopOnCycle: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Period != 1 {
		t.Errorf("empty board has period 1, got %d", result.Period)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New()

	tests := []struct {
		name string
		grid *life.Grid
		cfg  Config
	}{
		{"nil grid", nil, Config{Generations: 1}},
		{"zero generations", blinker(t), Config{Generations: 0}},
		{"negative generations", blinker(t), Config{Generations: -1}},
		{"negative window", blinker(t), Config{Generations: 1, CycleWindow: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(context.Background(), tt.grid, tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New().Run(ctx, blinker(t), Config{Generations: 100})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil || len(result.Populations) != 1 {
		t.Errorf("expected partial result with the seed generation only")
	}
}

func TestSimulatorObserver(t *testing.T) {
	sim := New()
	var gens []int
	sim.AddObserver(ObserverFunc(func(gen int, g *life.Grid) {
		gens = append(gens, gen)
	}))

	if _, err := sim.Run(context.Background(), blinker(t), Config{Generations: 3}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := []int{0, 1, 2, 3}
	if len(gens) != len(want) {
		t.Fatalf("expected %v, got %v", want, gens)
	}
	for i := range want {
		if gens[i] != want[i] {
			t.Errorf("expected %v, got %v", want, gens)
		}
	}
}
