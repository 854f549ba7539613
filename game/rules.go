package game

// Geometry supplies the static rules of the grid: how many orbs a cell holds
// before it explodes and which cells receive orbs when it does.
type Geometry interface {
	// Capacity is the orb count at which the cell at (x, y) explodes. Always positive.
	Capacity(x, y, rows, cols int) int
	// Neighbors returns the in-bounds, non-blocked cells that receive an orb
	// when (x, y) explodes. It may inspect the board contents.
	Neighbors(b *Board, x, y int) []Coord
}
