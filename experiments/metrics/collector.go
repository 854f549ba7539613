package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Difficulty  string
	Depth       int
	Candidates  int
	Duration    time.Duration
	Nodes       int // Search calls, each evaluating one board
	Cutoffs     int // Alpha-beta prunes
	Simulations int // Placements resolved
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Passed bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, -1 when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(difficulty string, depth, candidates int)
	AddNode()
	AddCutoff()
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	difficulty  string
	depth       int
	candidates  int
	startTime   time.Time
	nodes       atomic.Int64
	cutoffs     atomic.Int64
	simulations atomic.Int64
}

// NewCollector returns a collector for a single move search. Start resets it.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(difficulty string, depth, candidates int) {
	m.startTime = time.Now()
	m.difficulty = difficulty
	m.depth = depth
	m.candidates = candidates
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.simulations.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty:  m.difficulty,
		Depth:       m.depth,
		Candidates:  m.candidates,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Simulations: int(m.simulations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(difficulty string, depth, candidates int) {}
func (m *dummyCollector) AddNode()                                       {}
func (m *dummyCollector) AddCutoff()                                     {}
func (m *dummyCollector) AddSimulation()                                 {}
func (m *dummyCollector) Complete() SearchMetric                         { return SearchMetric{} }
