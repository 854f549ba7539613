package engine

import (
	"fmt"
	"time"

	"chainreaction/agent"
	"chainreaction/experiments/metrics"
	"chainreaction/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(e *Engine)

// Engine runs a local game between agents, one per seat.
type Engine struct {
	Board      *game.Board
	Agents     []agent.Agent
	geometry   game.Geometry
	observers  []Observer
	maxTurns   int
	starting   game.PlayerID
	current    game.PlayerID
	step       int
	passes     int // consecutive
	eliminated []bool
	winner     game.PlayerID
	over       bool
}

func WithObservers(observers ...Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, observers...)
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithStartingPlayer(player game.PlayerID) Option {
	return func(e *Engine) {
		e.starting = player
	}
}

// LocalEngine seats agents[i] as player i on board. The board is copied.
func LocalEngine(geometry game.Geometry, board *game.Board, agents []agent.Agent, options ...Option) (*Engine, error) {
	if len(agents) < 2 {
		return nil, fmt.Errorf("need at least two players, got %d: %w", len(agents), game.ErrInvalidInput)
	}
	if err := board.Validate(len(agents)); err != nil {
		return nil, err
	}

	e := &Engine{
		Board:      board.Clone(),
		Agents:     agents,
		geometry:   geometry,
		maxTurns:   MaxTurns,
		eliminated: make([]bool, len(agents)),
		winner:     NoWinner,
	}
	for _, option := range options {
		option(e)
	}
	if e.starting < 0 || int(e.starting) >= len(agents) {
		return nil, fmt.Errorf("starting player %d of %d: %w", e.starting, len(agents), game.ErrInvalidInput)
	}
	e.current = e.starting
	return e, nil
}

func (e *Engine) Current() game.PlayerID {
	return e.current
}

func (e *Engine) Winner() game.PlayerID {
	return e.winner
}

func (e *Engine) Over() bool {
	return e.over
}

// Run plays until a seat wins, every seat is stuck, or the turn limit.
func (e *Engine) Run() (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	gameMetric := metrics.GameMetric{StartingPlayer: int(e.starting), StartTime: start}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.current)

	for !e.over {
		turn, err := e.Step()
		if err != nil {
			return NoWinner, gameMetric, moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn.Step,
			Player:       int(turn.Player),
			Passed:       turn.Passed,
			SearchMetric: turn.Decision.Metric,
		})
		if turn.Passed {
			gameMetric.Passes++
		}
	}

	gameMetric.Winner = int(e.winner)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = e.step

	if e.winner != NoWinner {
		log.Info().Msgf("game over after %d turns, winner: player %d", e.step, e.winner)
	} else {
		log.Info().Msgf("game over after %d turns without a winner", e.step)
	}
	return e.winner, gameMetric, moveMetrics, nil
}

// Step asks the current seat's agent for a decision and plays it.
func (e *Engine) Step() (Turn, error) {
	if e.over {
		return Turn{}, game.ErrGameOver
	}

	player := e.current
	decision, ok, err := e.Agents[player].FindMove(e.Board, player, len(e.Agents))
	if err != nil {
		return Turn{}, fmt.Errorf("player %d failed to find a move: %w", player, err)
	}
	if !ok {
		return e.Pass()
	}

	log.Debug().
		Int("player", int(player)).
		Str("agent", e.Agents[player].Name()).
		Int("x", decision.Move.X).
		Int("y", decision.Move.Y).
		Float64("score", decision.Score).
		Int("depth", decision.Depth).
		Dur("duration", decision.Metric.Duration).
		Msg("move selected")

	return e.play(decision.Move, decision)
}

// Play places an orb for the current seat, for seats driven from outside the
// engine.
func (e *Engine) Play(m game.Move) (Turn, error) {
	return e.play(m, agent.Decision{Move: m})
}

// Pass skips the current seat. It is only legal when the seat has no move.
func (e *Engine) Pass() (Turn, error) {
	if e.over {
		return Turn{}, game.ErrGameOver
	}
	player := e.current
	if len(e.Board.LegalMoves(player)) > 0 {
		return Turn{}, fmt.Errorf("player %d cannot pass with moves available: %w", player, game.ErrIllegalMove)
	}

	e.step++
	e.passes++
	turn := Turn{Step: e.step, Player: player, Passed: true}
	log.Debug().Int("player", int(player)).Msg("no legal move, passing")

	e.advance()
	e.notify(turn)
	return turn, nil
}

func (e *Engine) play(m game.Move, decision agent.Decision) (Turn, error) {
	if e.over {
		return Turn{}, game.ErrGameOver
	}
	player := e.current
	if err := e.Board.ValidateMove(m, player); err != nil {
		return Turn{}, err
	}

	cascade := game.Resolve(e.geometry, e.Board, m, player)
	if !cascade.Stable {
		log.Warn().Msgf("cascade from (%d,%d) stopped after %d waves without settling", m.X, m.Y, game.MaxWaves)
	}

	e.Board = cascade.Board
	e.step++
	e.passes = 0
	turn := Turn{Step: e.step, Player: player, Move: m, Cascade: cascade, Decision: decision}

	e.advance()
	e.notify(turn)
	return turn, nil
}

// advance updates eliminations, detects the end of the game and moves to the
// next seat still in play. Nobody is eliminated before every seat has had a
// turn.
func (e *Engine) advance() {
	orbs := e.Board.Orbs()
	firstRoundDone := e.step >= len(e.Agents)
	if firstRoundDone {
		for seat := range e.Agents {
			if !e.eliminated[seat] && orbs[game.PlayerID(seat)] == 0 {
				e.eliminated[seat] = true
				log.Info().Msgf("player %d has been eliminated", seat)
			}
		}
	}

	alive := e.alive()
	holders := lo.Keys(orbs)
	switch {
	case firstRoundDone && len(holders) == 1:
		e.winner = holders[0]
		e.over = true
	case e.passes >= len(alive):
		e.over = true // Nobody can move
	case e.step >= e.maxTurns:
		e.over = true
	}
	if e.over {
		return
	}

	for next := (int(e.current) + 1) % len(e.Agents); ; next = (next + 1) % len(e.Agents) {
		if !e.eliminated[next] {
			e.current = game.PlayerID(next)
			return
		}
	}
}

func (e *Engine) alive() []game.PlayerID {
	seats := lo.Range(len(e.Agents))
	alive := lo.Filter(seats, func(seat int, _ int) bool { return !e.eliminated[seat] })
	return lo.Map(alive, func(seat int, _ int) game.PlayerID { return game.PlayerID(seat) })
}

func (e *Engine) notify(turn Turn) {
	for _, o := range e.observers {
		o.OnTurn(turn)
	}
	if e.over {
		result := Result{Winner: e.winner, Board: e.Board, Turns: e.step}
		for _, o := range e.observers {
			o.OnGameOver(result)
		}
	}
}
