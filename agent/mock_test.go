package agent

import "chainreaction/game"

// fixedSource adds no jitter, picks the first candidate and keeps scan order.
type fixedSource struct{}

func (fixedSource) Float64() float64                   { return 0 }
func (fixedSource) Intn(n int) int                     { return 0 }
func (fixedSource) Shuffle(n int, swap func(i, j int)) {}

// reverseSource shuffles by reversing.
type reverseSource struct{ fixedSource }

func (reverseSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

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
