package config

import (
	"flag"
	"fmt"
	"strings"

	"chainreaction/agent"
	"chainreaction/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	CommandPlay       = "play"
	CommandExperiment = "experiment"
	CommandThroughput = "throughput"
)

// Config holds command line configuration. Environment variables set the
// defaults and flags override them.
type Config struct {
	Command      string   `env:"CHAIN_COMMAND"      envDefault:"play"`
	Rows         int      `env:"CHAIN_ROWS"`
	Cols         int      `env:"CHAIN_COLS"`
	Players      int      `env:"CHAIN_PLAYERS"`
	Difficulties []string `env:"CHAIN_DIFFICULTIES" envSeparator:"," envDefault:"hard,normal"`
	Games        int      `env:"CHAIN_GAMES"`
	MaxTurns     int      `env:"CHAIN_MAX_TURNS"`
	Seed         uint64   `env:"CHAIN_SEED"` // 0 draws from a crypto source
	Layout       string   `env:"CHAIN_LAYOUT"`
	OutputDir    string   `env:"CHAIN_OUTPUT_DIR"   envDefault:"results"`
	LogLevel     string   `env:"CHAIN_LOG_LEVEL"    envDefault:"info"`
	Metrics      bool     `env:"CHAIN_METRICS"      envDefault:"true"`
}

// Load parses the environment, then args. A positional argument selects the
// command.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		Rows:     meta.ROWS,
		Cols:     meta.COLS,
		Players:  meta.PLAYERS,
		Games:    meta.GAMES,
		MaxTurns: meta.MAX_TURNS,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "board height")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "board width")
	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of seats")
	fs.Func("difficulties", "comma separated difficulty per seat (easy, normal, hard, hint)", func(s string) error {
		cfg.Difficulties = strings.Split(s, ",")
		return nil
	})
	fs.IntVar(&cfg.Games, "games", cfg.Games, "games per experiment matchup")
	fs.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "turns before a game ends without a winner")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a crypto source")
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "path to a YAML board layout")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for experiment results")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "collect search metrics")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		cfg.Command = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Command {
	case CommandPlay, CommandExperiment, CommandThroughput:
	default:
		return fmt.Errorf("unknown command %q", c.Command)
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Players < 2 {
		return fmt.Errorf("need at least two players, got %d", c.Players)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if _, err := c.Tiers(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Tiers returns one difficulty per seat. The last listed difficulty fills any
// seats left over.
func (c Config) Tiers() ([]agent.Difficulty, error) {
	tiers := make([]agent.Difficulty, c.Players)
	last := agent.Normal
	for i := range tiers {
		if i < len(c.Difficulties) {
			d, err := agent.ParseDifficulty(strings.TrimSpace(c.Difficulties[i]))
			if err != nil {
				return nil, err
			}
			last = d
		}
		tiers[i] = last
	}
	return tiers, nil
}

// Level is the parsed log level, info when unset or invalid.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
