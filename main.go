package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"chainreaction/agent"
	"chainreaction/config"
	"chainreaction/engine"
	"chainreaction/experiments"
	"chainreaction/game"
	"chainreaction/random"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Command)
	}
}

func run(cfg config.Config) error {
	source := random.New()
	if cfg.Seed != 0 {
		source = random.NewSeeded(cfg.Seed)
	}

	var layout *game.Board
	if cfg.Layout != "" {
		var err error
		if layout, err = game.LoadLayout(cfg.Layout, cfg.Players); err != nil {
			return err
		}
	}

	opts := experiments.Options{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		Layout:   layout,
		Games:    cfg.Games,
		MaxTurns: cfg.MaxTurns,
		Source:   source,
	}

	switch cfg.Command {
	case config.CommandExperiment:
		opts.OutputDir = cfg.OutputDir
		_, err := experiments.RunStrengthExperiment(opts)
		return err
	case config.CommandThroughput:
		_, err := experiments.RunThroughputExperiment(opts)
		return err
	default:
		return play(cfg, layout, source)
	}
}

// play runs a single game and prints it to stdout.
func play(cfg config.Config, board *game.Board, source random.Source) error {
	if board == nil {
		var err error
		if board, err = game.NewBoard(cfg.Rows, cfg.Cols); err != nil {
			return err
		}
	}

	tiers, err := cfg.Tiers()
	if err != nil {
		return err
	}

	geometry := game.NewGridGeometry()
	options := []agent.Option{agent.WithSource(source)}
	if cfg.Metrics {
		options = append(options, agent.WithMetrics())
	}
	selector := agent.NewSelector(geometry, options...)

	agents := make([]agent.Agent, len(tiers))
	for i, d := range tiers {
		agents[i] = agent.NewTierAgent(selector, d)
	}

	e, err := engine.LocalEngine(geometry, board, agents,
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithObservers(engine.NewTextObserver(os.Stdout)))
	if err != nil {
		return err
	}

	_, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	log.Info().Msgf("game took %s over %d moves with %d passes", gameMetric.Duration, gameMetric.TotalMoves, gameMetric.Passes)
	return nil
}
