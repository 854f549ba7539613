// Package random provides the pseudo-random sources the engine draws from for
// score jitter, easy-tier picks and candidate shuffling.
package random

import (
	"sync"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// Source is the randomness the engine depends on. Implementations must be safe
// for concurrent use.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Shuffle pseudo-randomly permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

type cryptoSource struct{}

// New returns a non-reproducible source backed by frand.
func New() Source {
	return cryptoSource{}
}

func (cryptoSource) Float64() float64 { return frand.Float64() }

func (cryptoSource) Intn(n int) int { return frand.Intn(n) }

func (cryptoSource) Shuffle(n int, swap func(i, j int)) { frand.Shuffle(n, swap) }

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a reproducible source. Two sources built from the same
// seed yield the same sequence.
func NewSeeded(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Float64()
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}

func (s *seededSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(n, swap)
}
