package game

// constSource always returns the same jitter, never reorders and always picks
// the first index.
type constSource float64

func (s constSource) Float64() float64                   { return float64(s) }
func (s constSource) Intn(n int) int                     { return 0 }
func (s constSource) Shuffle(n int, swap func(i, j int)) {}

// uniformGeometry gives every cell the same capacity with orthogonal
// neighbors.
type uniformGeometry struct {
	capacity int
}

func (g uniformGeometry) Capacity(x, y, rows, cols int) int { return g.capacity }

func (g uniformGeometry) Neighbors(b *Board, x, y int) []Coord {
	return GridGeometry{}.Neighbors(b, x, y)
}

// ringGeometry links cells in a cycle, each with capacity 1, so any explosion
// retriggers forever.
type ringGeometry struct {
	next map[Coord]Coord
}

func (g ringGeometry) Capacity(x, y, rows, cols int) int { return 1 }

func (g ringGeometry) Neighbors(b *Board, x, y int) []Coord {
	return []Coord{g.next[Coord{X: x, Y: y}]}
}

func mustBoard(rows, cols int) *Board {
	b, err := NewBoard(rows, cols)
	if err != nil {
		panic(err)
	}
	return b
}

func place(b *Board, x, y int, owner PlayerID, count int) {
	c := b.At(x, y)
	c.Owner = owner
	c.Count = count
}
