package engine

import (
	"chainreaction/agent"
	"chainreaction/game"
)

// scriptedAgent plays its moves in order, then passes.
type scriptedAgent struct {
	moves []game.Move
	next  int
}

func (a *scriptedAgent) FindMove(b *game.Board, player game.PlayerID, players int) (agent.Decision, bool, error) {
	if len(b.LegalMoves(player)) == 0 {
		return agent.Decision{}, false, nil
	}
	m := a.moves[a.next]
	a.next++
	return agent.Decision{Move: m, Board: game.Simulate(game.GridGeometry{}, b, m, player)}, true, nil
}

func (a *scriptedAgent) Name() string { return "scripted" }

type recordingObserver struct {
	turns   []Turn
	results []Result
}

func (o *recordingObserver) OnTurn(turn Turn)         { o.turns = append(o.turns, turn) }
func (o *recordingObserver) OnGameOver(result Result) { o.results = append(o.results, result) }

// fixedSource adds no jitter, picks the first candidate and keeps scan order.
type fixedSource struct{}

func (fixedSource) Float64() float64                   { return 0 }
func (fixedSource) Intn(n int) int                     { return 0 }
func (fixedSource) Shuffle(n int, swap func(i, j int)) {}

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
