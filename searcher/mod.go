package searcher

import (
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/random"
)

type Option func(s *Searcher)

// Searcher runs depth-limited minimax with alpha-beta pruning over chain
// reaction boards. Every node owns a fresh board, so a Searcher holds no board
// state between calls.
type Searcher struct {
	geometry game.Geometry
	source   random.Source
	metrics  metrics.Collector
}

func WithSource(source random.Source) Option {
	return func(s *Searcher) {
		if source != nil {
			s.source = source
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(geometry game.Geometry, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		geometry: geometry,
		source:   random.New(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Opponent is the single seat the minimizing plies play for. Even with more
// than two players the search only alternates between root and this seat.
func Opponent(root game.PlayerID, players int) game.PlayerID {
	return game.PlayerID((int(root) + 1) % players)
}
