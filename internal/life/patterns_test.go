package life

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSeed_Patterns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		pattern    string
		population int
	}{
		{"empty", 0},
		{"blinker", 3},
		{"glider", 5},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			g, err := Seed(tt.pattern, 10, 12, 0.5, rng)
			if err != nil {
				t.Fatalf("Seed failed: %v", err)
			}
			if g.Population() != tt.population {
				t.Errorf("expected population %d, got %d", tt.population, g.Population())
			}
		})
	}
}

func TestSeed_Stripes(t *testing.T) {
	g, err := Seed("stripes", 5, 3, 0, nil)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	for i, c := range g.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if c != want {
			t.Errorf("cell %d = %v, want %v", i, c, want)
		}
	}
}

func TestSeed_GliderTranslates(t *testing.T) {
	g, err := Seed("glider", 8, 8, 0, nil)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	start := g.Clone()
	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.Population() != 5 {
		t.Fatalf("glider should keep 5 cells, got %d", g.Population())
	}

	// After 4 generations the glider sits one cell down and right.
	shifted := mustGrid(t, 8, 8)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if start.Cell(row, col) == Alive {
				shifted.Set((row+1)%8, (col+1)%8, Alive)
			}
		}
	}
	if !g.Equal(shifted) {
		t.Errorf("glider did not translate:\n%s", g)
	}
}

func TestSeed_Unknown(t *testing.T) {
	_, err := Seed("gosper", 10, 10, 0.5, nil)
	if !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestPatternNames(t *testing.T) {
	names := PatternNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 patterns, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
