package searcher

import "chainreaction/game"

// zeroSource removes jitter so repeated evaluations agree exactly.
type zeroSource struct{}

func (zeroSource) Float64() float64                   { return 0 }
func (zeroSource) Intn(n int) int                     { return 0 }
func (zeroSource) Shuffle(n int, swap func(i, j int)) {}

func newBoard(rows, cols int) *game.Board {
	b, err := game.NewBoard(rows, cols)
	if err != nil {
		panic(err)
	}
	return b
}

func place(b *game.Board, x, y int, owner game.PlayerID, count int) {
	c := b.At(x, y)
	c.Owner = owner
	c.Count = count
}

// fullMinimax is the unpruned reference search.
func fullMinimax(geo game.Geometry, b *game.Board, depth int, maximizing bool, root game.PlayerID, players int) float64 {
	value := game.Evaluate(geo, b, root, zeroSource{})
	if depth == 0 || game.IsTerminal(value) {
		return value
	}
	player := root
	if !maximizing {
		player = Opponent(root, players)
	}
	moves := b.LegalMoves(player)
	if len(moves) == 0 {
		return value
	}

	values := make([]float64, 0, len(moves))
	for _, m := range moves {
		child := game.Simulate(geo, b, m, player)
		values = append(values, fullMinimax(geo, child, depth-1, !maximizing, root, players))
	}
	best := values[0]
	for _, v := range values[1:] {
		if (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}
	return best
}
