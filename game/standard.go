package game

// GridGeometry is the classic rectangular layout: orthogonal neighbors, with
// capacity equal to the number of in-bounds orthogonal neighbors (2 in a
// corner, 3 on an edge, 4 elsewhere).
//
// Capacity ignores blocked cells while Neighbors skips them, so a cell next to
// a blocked one loses an orb each time it explodes.
type GridGeometry struct{}

var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func NewGridGeometry() GridGeometry {
	return GridGeometry{}
}

func (GridGeometry) Capacity(x, y, rows, cols int) int {
	capacity := 0
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < cols && ny >= 0 && ny < rows {
			capacity++
		}
	}
	// A 1x1 board has no neighbors at all
	return max(capacity, 1)
}

func (GridGeometry) Neighbors(b *Board, x, y int) []Coord {
	neighbors := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !b.InBounds(nx, ny) || b.At(nx, ny).Blocked {
			continue
		}
		neighbors = append(neighbors, Coord{X: nx, Y: ny})
	}
	return neighbors
}
