package game

// Cascade describes how a placement resolved.
type Cascade struct {
	Board *Board
	// Waves lists, per wave, the cells that exploded in it.
	Waves [][]Coord
	// Stable is false when resolution stopped at MaxWaves with cells still at
	// or above capacity.
	Stable bool
}

// Simulate places one orb for player at m on a copy of b and resolves every
// resulting explosion. The input board is never modified.
func Simulate(geo Geometry, b *Board, m Move, player PlayerID) *Board {
	next, _, _ := resolve(geo, b, m, player, false)
	return next
}

// Resolve is Simulate with a record of the explosions, for callers that
// animate or audit a cascade.
func Resolve(geo Geometry, b *Board, m Move, player PlayerID) Cascade {
	next, waves, stable := resolve(geo, b, m, player, true)
	return Cascade{Board: next, Waves: waves, Stable: stable}
}

func resolve(geo Geometry, b *Board, m Move, player PlayerID, record bool) (*Board, [][]Coord, bool) {
	next := b.Clone()
	target := next.At(m.X, m.Y)
	target.Owner = player
	target.Count++

	// Scan the whole board so malformed input with pre-existing overloaded
	// cells also settles
	var queue []Coord
	for i, c := range next.Cells {
		x, y := i%next.Cols, i/next.Cols
		if !c.Blocked && c.Count >= geo.Capacity(x, y, next.Rows, next.Cols) {
			queue = append(queue, Coord{X: x, Y: y})
		}
	}

	var waves [][]Coord
	seen := make([]bool, len(next.Cells))
	for loops := 0; len(queue) > 0 && loops < MaxWaves; loops++ {
		wave := dedupe(queue, seen, next.Cols)
		queue = nil

		var exploded []Coord
		for _, at := range wave {
			capacity := geo.Capacity(at.X, at.Y, next.Rows, next.Cols)
			cell := next.At(at.X, at.Y)
			if cell.Count < capacity {
				continue
			}
			cell.Count -= capacity
			if cell.Count == 0 {
				cell.Owner = Unowned
			}
			if record {
				exploded = append(exploded, at)
			}

			for _, n := range geo.Neighbors(next, at.X, at.Y) {
				neighbor := next.At(n.X, n.Y)
				neighbor.Owner = player
				neighbor.Count++
				if neighbor.Count >= geo.Capacity(n.X, n.Y, next.Rows, next.Cols) {
					queue = append(queue, n)
				}
			}
		}
		if record && len(exploded) > 0 {
			waves = append(waves, exploded)
		}
	}

	return next, waves, len(queue) == 0
}

// dedupe keeps the first occurrence of each coordinate, preserving order.
// seen is scratch space sized to the board and is left cleared.
func dedupe(queue []Coord, seen []bool, cols int) []Coord {
	wave := make([]Coord, 0, len(queue))
	for _, at := range queue {
		i := at.Y*cols + at.X
		if seen[i] {
			continue
		}
		seen[i] = true
		wave = append(wave, at)
	}
	for _, at := range wave {
		seen[at.Y*cols+at.X] = false
	}
	return wave
}
