package experiments

import (
	"fmt"

	"chainreaction/agent"
	"chainreaction/engine"
	"chainreaction/experiments/metrics"
	"chainreaction/game"
	"chainreaction/meta"
	"chainreaction/random"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Tiers are the difficulties compared by the strength experiment.
var Tiers = []agent.Difficulty{agent.Easy, agent.Normal, agent.Hard, agent.Hint}

type Options struct {
	Rows      int
	Cols      int
	Layout    *game.Board // Overrides Rows and Cols when set
	Games     int         // Per match up
	MaxTurns  int
	Source    random.Source
	OutputDir string // Nothing is written when empty
}

// Summary aggregates the games of one matchup.
type Summary struct {
	Agent1    metrics.AgentConfig
	Agent2    metrics.AgentConfig
	Games     int
	Wins1     int
	Wins2     int
	Draws     int
	MeanMoves float64
	StdMoves  float64
}

// RunStrengthExperiment pairs every tier against every other tier. Starting
// seats alternate between games.
func RunStrengthExperiment(opts Options) ([]Summary, error) {
	configs := lo.Map(Tiers, func(d agent.Difficulty, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Difficulty: d.String()}
	})

	matchUps := lo.FlatMap(configs, func(config1 metrics.AgentConfig, i int) [][]metrics.AgentConfig {
		return lo.Map(configs[i+1:], func(config2 metrics.AgentConfig, _ int) []metrics.AgentConfig {
			return []metrics.AgentConfig{config1, config2}
		})
	})

	return runExperiment("strength", configs, matchUps, opts)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, opts Options) ([]Summary, error) {
	opts = withDefaults(opts)

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		summary := Summary{Agent1: config1, Agent2: config2, Games: opts.Games}
		moves := make([]float64, 0, opts.Games)

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < opts.Games; i++ {
			starting := game.PlayerID(i % 2)
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, starting, opts)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case 0:
				summary.Wins1++
			case 1:
				summary.Wins2++
			default:
				summary.Draws++
			}
			moves = append(moves, float64(gameMetric.TotalMoves))
		}

		summary.MeanMoves, summary.StdMoves = stat.MeanStdDev(moves, nil)
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: %s %d, %s %d, draws %d, moves %.1f±%.1f",
			mi+1, len(matchUps), config1.Difficulty, summary.Wins1, config2.Difficulty, summary.Wins2,
			summary.Draws, summary.MeanMoves, summary.StdMoves)
	}

	log.Info().Msgf("completed %s experiment", name)

	if opts.OutputDir == "" {
		return summaries, nil
	}
	if err := store(name, opts.OutputDir, configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}
	return summaries, nil
}

func store(name, root string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, starting game.PlayerID, opts Options) (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	geometry := game.NewGridGeometry()
	selector := agent.NewSelector(geometry, agent.WithSource(opts.Source), agent.WithMetrics())
	agents := []agent.Agent{
		agent.NewTierAgent(selector, agent.Difficulty(config1.Difficulty)),
		agent.NewTierAgent(selector, agent.Difficulty(config2.Difficulty)),
	}

	board := opts.Layout
	if board == nil {
		var err error
		if board, err = game.NewBoard(opts.Rows, opts.Cols); err != nil {
			return engine.NoWinner, metrics.GameMetric{}, nil, err
		}
	}

	e, err := engine.LocalEngine(geometry, board, agents, engine.WithMaxTurns(opts.MaxTurns), engine.WithStartingPlayer(starting))
	if err != nil {
		return engine.NoWinner, metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func withDefaults(opts Options) Options {
	if opts.Rows <= 0 {
		opts.Rows = meta.ROWS
	}
	if opts.Cols <= 0 {
		opts.Cols = meta.COLS
	}
	if opts.Games <= 0 {
		opts.Games = meta.GAMES
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = meta.MAX_TURNS
	}
	if opts.Source == nil {
		opts.Source = random.New()
	}
	return opts
}
