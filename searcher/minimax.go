package searcher

import (
	"math"

	"chainreaction/game"
)

// Search bounds the value of b for root, looking depth plies ahead.
// Maximizing plies place for root, minimizing plies for Opponent(root, players).
//
// The static evaluation is returned as-is at depth 0, on a Win or Loss, or when
// the player to move has no legal placement.
func (s *Searcher) Search(b *game.Board, depth int, maximizing bool, root game.PlayerID, players int, alpha, beta float64) float64 {
	s.metrics.AddNode()

	value := game.Evaluate(s.geometry, b, root, s.source)
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

	if maximizing {
		best := math.Inf(-1)
		for _, m := range moves {
			child := s.Play(b, m, player)
			best = math.Max(best, s.Search(child, depth-1, false, root, players, alpha, beta))
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				s.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		child := s.Play(b, m, player)
		best = math.Min(best, s.Search(child, depth-1, true, root, players, alpha, beta))
		beta = math.Min(beta, best)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

// Evaluate scores b for player with the searcher's geometry and source.
func (s *Searcher) Evaluate(b *game.Board, player game.PlayerID) float64 {
	return game.Evaluate(s.geometry, b, player, s.source)
}

// Play resolves one placement on a copy of b.
func (s *Searcher) Play(b *game.Board, m game.Move, player game.PlayerID) *game.Board {
	s.metrics.AddSimulation()
	return game.Simulate(s.geometry, b, m, player)
}
