// Package life provides the board and transition rule for Conway's Game of Life.
//
// The package defines:
//
//   - [Cell]: a single Alive/Dead value that sums directly as a neighbor count
//   - [Grid]: a flat width×height board on a torus
//   - [Next]: the transition rule for one cell
//   - [Seed]: named seeding patterns (random, stripes, blinker, glider, empty)
//
// # Example
//
//	g, _ := life.New(40, 80, nil)
//	g.Tick()
//	fmt.Println(g.Generation(), g.Population())
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. A grid is owned by one loop; use
// [Grid.Clone] to hand a snapshot to another goroutine.
package life
