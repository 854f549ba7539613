package experiments

import (
	"time"

	"chainreaction/agent"
	"chainreaction/experiments/metrics"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Throughput is the search speed of one tier in self-play.
type Throughput struct {
	Difficulty         string
	Moves              int
	NodesPerMove       float64
	SimulationsPerMove float64
	SimulationsPerSec  float64
	MeanDuration       time.Duration
}

// RunThroughputExperiment plays each searching tier against itself, for the
// same playing strength and similar game length, and reports how many placements
// it resolves per second.
func RunThroughputExperiment(opts Options) ([]Throughput, error) {
	opts = withDefaults(opts)
	searching := lo.Filter(Tiers, func(d agent.Difficulty, _ int) bool { return d != agent.Easy })

	log.Info().Msg("starting throughput experiment...")

	results := make([]Throughput, 0, len(searching))
	for i, d := range searching {
		config := metrics.AgentConfig{ID: i + 1, Difficulty: d.String()}

		var moveMetrics []metrics.MoveMetric
		for g := 0; g < opts.Games; g++ {
			_, _, mm, err := runGame(config, config, 0, opts)
			if err != nil {
				return nil, err
			}
			moveMetrics = append(moveMetrics, mm...)
		}

		result := throughput(d.String(), moveMetrics)
		results = append(results, result)
		log.Info().Msgf("%s: %d moves, %.1f nodes and %.1f simulations per move, %.0f simulations/s",
			result.Difficulty, result.Moves, result.NodesPerMove, result.SimulationsPerMove, result.SimulationsPerSec)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}

func throughput(difficulty string, moveMetrics []metrics.MoveMetric) Throughput {
	played := lo.Reject(moveMetrics, func(mm metrics.MoveMetric, _ int) bool { return mm.Passed })
	result := Throughput{Difficulty: difficulty, Moves: len(played)}
	if len(played) == 0 {
		return result
	}

	nodes := lo.Map(played, func(mm metrics.MoveMetric, _ int) float64 { return float64(mm.Nodes) })
	simulations := lo.Map(played, func(mm metrics.MoveMetric, _ int) float64 { return float64(mm.Simulations) })
	durations := lo.Map(played, func(mm metrics.MoveMetric, _ int) float64 { return mm.Duration.Seconds() })

	result.NodesPerMove = stat.Mean(nodes, nil)
	result.SimulationsPerMove = stat.Mean(simulations, nil)
	meanSeconds := stat.Mean(durations, nil)
	result.MeanDuration = time.Duration(meanSeconds * float64(time.Second))
	if meanSeconds > 0 {
		result.SimulationsPerSec = result.SimulationsPerMove / meanSeconds
	}
	return result
}
