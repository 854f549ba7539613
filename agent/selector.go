package agent

import (
	"fmt"
	"math"

	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/random"
	"chainreaction/searcher"
)

type Option func(s *Selector)

// Decision is the chosen move together with the board it resolves to.
type Decision struct {
	Move   game.Move
	Score  float64
	Depth  int
	Board  *game.Board
	Metric metrics.SearchMetric
}

// Selector picks moves for a seat. It keeps no per-call state and is safe for
// concurrent use when its source is.
type Selector struct {
	geometry    game.Geometry
	source      random.Source
	withMetrics bool
}

func WithSource(source random.Source) Option {
	return func(s *Selector) {
		if source != nil {
			s.source = source
		}
	}
}

func WithMetrics() Option {
	return func(s *Selector) {
		s.withMetrics = true
	}
}

func NewSelector(geometry game.Geometry, options ...Option) *Selector {
	s := &Selector{
		geometry: geometry,
		source:   random.New(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// SelectMove chooses a placement for player on b. ok is false when player has
// no legal placement, which callers treat as a pass. An error is returned only
// for malformed input.
func (s *Selector) SelectMove(b *game.Board, player game.PlayerID, difficulty Difficulty, players int) (decision Decision, ok bool, err error) {
	if players < 1 {
		return Decision{}, false, fmt.Errorf("%d players: %w", players, game.ErrInvalidInput)
	}
	if player < 0 || int(player) >= players {
		return Decision{}, false, fmt.Errorf("player %d of %d: %w", player, players, game.ErrInvalidInput)
	}
	if err := b.Validate(players); err != nil {
		return Decision{}, false, err
	}

	candidates := b.LegalMoves(player)
	if len(candidates) == 0 {
		return Decision{}, false, nil
	}

	collector := metrics.NewDummyCollector()
	if s.withMetrics {
		collector = metrics.NewCollector()
	}
	depth := difficulty.Depth(b)
	collector.Start(difficulty.String(), depth, len(candidates))
	search := searcher.New(s.geometry, searcher.WithSource(s.source), searcher.WithMetrics(collector))

	if difficulty == Easy {
		m := candidates[s.source.Intn(len(candidates))]
		return Decision{
			Move:   m,
			Board:  search.Play(b, m, player),
			Metric: collector.Complete(),
		}, true, nil
	}

	// Equal scores resolve to whichever candidate the shuffle put first
	s.source.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	best := Decision{Score: math.Inf(-1), Depth: depth}
	for i, m := range candidates {
		next := search.Play(b, m, player)

		var score float64
		if depth > 1 {
			score = search.Search(next, depth-1, false, player, players, math.Inf(-1), math.Inf(1))
		} else {
			score = search.Evaluate(next, player)
		}

		if i == 0 || score > best.Score {
			best.Move = m
			best.Score = score
			best.Board = next
		}
	}
	best.Metric = collector.Complete()
	return best, true, nil
}
