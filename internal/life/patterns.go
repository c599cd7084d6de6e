package life

import (
	"fmt"
	"math/rand"
	"sort"
)

// Seeder fills a fresh board.
type Seeder func(width, height int, density float64, rng *rand.Rand) (*Grid, error)

var seeders = map[string]Seeder{
	"random":  NewWithDensity,
	"stripes": seedStripes,
	"blinker": seedBlinker,
	"glider":  seedGlider,
	"empty": func(width, height int, _ float64, _ *rand.Rand) (*Grid, error) {
		return newEmpty(width, height)
	},
}

// Seed builds a board using the named pattern. density and rng only matter
// for "random".
func Seed(pattern string, width, height int, density float64, rng *rand.Rand) (*Grid, error) {
	fn, ok := seeders[pattern]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPattern, pattern, PatternNames())
	}
	return fn(width, height, density, rng)
}

// PatternNames lists the registered patterns, sorted.
func PatternNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// seedStripes marks every flat index divisible by 2 or 7.
func seedStripes(width, height int, _ float64, _ *rand.Rand) (*Grid, error) {
	g, err := newEmpty(width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		if i%2 == 0 || i%7 == 0 {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// seedBlinker places a vertical bar of three centered on the board.
func seedBlinker(width, height int, _ float64, _ *rand.Rand) (*Grid, error) {
	g, err := newEmpty(width, height)
	if err != nil {
		return nil, err
	}
	r, c := height/2, width/2
	for dr := -1; dr <= 1; dr++ {
		g.Set((r+dr+height)%height, c, Alive)
	}
	return g, nil
}

// seedGlider places a south-east glider near the top-left corner.
func seedGlider(width, height int, _ float64, _ *rand.Rand) (*Grid, error) {
	g, err := newEmpty(width, height)
	if err != nil {
		return nil, err
	}
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		g.Set((p[0]+1)%height, (p[1]+1)%width, Alive)
	}
	return g, nil
}
