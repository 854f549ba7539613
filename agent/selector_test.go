package agent

import (
	"math"
	"testing"

	"chainreaction/game"
	"chainreaction/random"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestSelectMoveNoMove(t *testing.T) {
	s := NewSelector(game.NewGridGeometry(), WithSource(fixedSource{}))

	b := newBoard(2, 2)
	b.Block(0, 0)
	place(b, 1, 0, 1, 1)
	place(b, 0, 1, 1, 1)
	place(b, 1, 1, 2, 1)

	for _, d := range []Difficulty{Easy, Normal, Hard, Hint} {
		_, ok, err := s.SelectMove(b, 0, d, 3)
		require.NoError(t, err, "No move is not an error")
		require.False(t, ok, "Player 0 has nowhere to play at %s", d)
	}
}

func TestSelectMoveInvalidInput(t *testing.T) {
	s := NewSelector(game.NewGridGeometry(), WithSource(fixedSource{}))
	b := newBoard(2, 2)

	_, _, err := s.SelectMove(b, 0, Normal, 0)
	require.ErrorIs(t, err, game.ErrInvalidInput, "Zero players")

	_, _, err = s.SelectMove(b, 2, Normal, 2)
	require.ErrorIs(t, err, game.ErrInvalidInput, "Player out of range")

	_, _, err = s.SelectMove(b, -1, Normal, 2)
	require.ErrorIs(t, err, game.ErrInvalidInput, "Negative player")

	broken := newBoard(2, 2)
	broken.Cells = broken.Cells[:2]
	_, _, err = s.SelectMove(broken, 0, Normal, 2)
	require.ErrorIs(t, err, game.ErrInvalidInput, "Mismatched dimensions")
}

func TestSelectMoveFindsWinningMove(t *testing.T) {
	geo := game.NewGridGeometry()
	b := newBoard(2, 2)
	place(b, 0, 0, 0, 1)
	place(b, 1, 0, 1, 1)

	for _, d := range []Difficulty{Normal, Hard, Hint} {
		t.Run(string(d), func(t *testing.T) {
			s := NewSelector(geo, WithSource(random.NewSeeded(3)))

			got, ok, err := s.SelectMove(b, 0, d, 2)

			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, game.Move{X: 0, Y: 0}, got.Move, "Exploding the corner captures every enemy orb")
			require.Equal(t, game.Win, got.Score)
			require.Equal(t, game.Simulate(geo, b, got.Move, 0), got.Board)
		})
	}
}

func TestSelectMoveTieBreak(t *testing.T) {
	// On an empty board every placement leaves player 0 as the sole owner
	geo := game.NewGridGeometry()
	b := newBoard(3, 3)

	t.Run("first candidate in shuffled order wins ties", func(t *testing.T) {
		got, ok, err := NewSelector(geo, WithSource(fixedSource{})).SelectMove(b, 0, Normal, 2)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Move{X: 0, Y: 0}, got.Move)

		got, ok, err = NewSelector(geo, WithSource(reverseSource{})).SelectMove(b, 0, Normal, 2)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, game.Move{X: 2, Y: 2}, got.Move, "Reversed shuffle puts the last cell first")
	})
}

func TestSelectMoveSearchDepth(t *testing.T) {
	geo := game.NewGridGeometry()
	b := newBoard(3, 3)
	place(b, 0, 0, 0, 1)
	place(b, 2, 2, 1, 1)
	before := b.Clone()

	t.Run("normal evaluates without searching", func(t *testing.T) {
		s := NewSelector(geo, WithSource(fixedSource{}), WithMetrics())
		got, ok, err := s.SelectMove(b, 0, Normal, 2)

		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 1, got.Depth)
		require.Equal(t, 0, got.Metric.Nodes)
		require.Equal(t, 8, got.Metric.Simulations)
		require.Equal(t, 8, got.Metric.Candidates)
		require.Equal(t, "normal", got.Metric.Difficulty)
	})

	t.Run("hard searches one reply per candidate", func(t *testing.T) {
		s := NewSelector(geo, WithSource(fixedSource{}), WithMetrics())
		got, ok, err := s.SelectMove(b, 0, Hard, 2)

		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2, got.Depth)
		require.Greater(t, got.Metric.Nodes, 8, "One search root per candidate plus its replies")
		require.Greater(t, got.Metric.Simulations, 8, "Replies are simulated too")
	})

	t.Run("matches an exhaustive two ply scan", func(t *testing.T) {
		s := NewSelector(geo, WithSource(fixedSource{}))
		got, _, err := s.SelectMove(b, 0, Hard, 2)
		require.NoError(t, err)

		bestScore := math.Inf(-1)
		for _, m := range b.LegalMoves(0) {
			next := game.Simulate(geo, b, m, 0)
			worst := game.Evaluate(geo, next, 0, fixedSource{})
			if !game.IsTerminal(worst) {
				replies := next.LegalMoves(1)
				if len(replies) > 0 {
					worst = math.Inf(1)
				}
				for _, r := range replies {
					worst = math.Min(worst, game.Evaluate(geo, game.Simulate(geo, next, r, 1), 0, fixedSource{}))
				}
			}
			bestScore = math.Max(bestScore, worst)
		}
		require.Equal(t, bestScore, got.Score)
	})

	require.Equal(t, before, b, "Selector must not mutate its input")
}

func TestSelectMoveEasyIsUniform(t *testing.T) {
	geo := game.NewGridGeometry()
	b := newBoard(2, 3)
	place(b, 1, 0, 1, 1)
	place(b, 1, 1, 1, 1)
	legal := b.LegalMoves(0)
	require.Len(t, legal, 4)

	s := NewSelector(geo, WithSource(random.NewSeeded(2024)))
	const trials = 8000
	counts := make(map[game.Move]float64)
	for i := 0; i < trials; i++ {
		got, ok, err := s.SelectMove(b, 0, Easy, 2)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 0, got.Depth)
		counts[got.Move]++
	}

	observed := make([]float64, 0, len(legal))
	expected := make([]float64, 0, len(legal))
	for _, m := range legal {
		observed = append(observed, counts[m])
		expected = append(expected, trials/float64(len(legal)))
	}
	require.Len(t, counts, len(legal), "Only legal moves are picked")

	chi2 := stat.ChiSquare(observed, expected)
	pValue := distuv.ChiSquared{K: float64(len(legal) - 1)}.Survival(chi2)
	require.Greater(t, pValue, 0.001, "Counts %v should look uniform", observed)
}

func TestTierAgent(t *testing.T) {
	s := NewSelector(game.NewGridGeometry(), WithSource(fixedSource{}))
	a := NewTierAgent(s, Hard)
	require.Equal(t, "hard", a.Name())

	b := newBoard(2, 2)
	got, ok, err := a.FindMove(b, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, got.Depth)
}
