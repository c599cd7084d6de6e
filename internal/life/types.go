package life

// Cell is the state of one board position. Alive sums as 1 so a neighbor
// count is the plain sum of the surrounding cells.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Next applies the transition rule to one cell given its live neighbor count.
// Rules are checked in order: underpopulation, stasis, overpopulation,
// reproduction; anything else keeps its value.
func Next(cell Cell, neighbors int) Cell {
	switch {
	case cell == Alive && neighbors < 2:
		return Dead
	case cell == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case cell == Alive && neighbors > 3:
		return Dead
	case cell == Dead && neighbors == 3:
		return Alive
	default:
		return cell
	}
}
