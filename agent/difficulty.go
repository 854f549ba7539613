package agent

import (
	"fmt"
	"strings"

	"chainreaction/game"
)

// Difficulty selects how far ahead the selector looks.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
	Hint   Difficulty = "hint"
)

// LateGameOccupancy is the share of filled cells above which hints search deep.
const LateGameOccupancy = 0.8

const (
	shallowDepth  = 1
	hardDepth     = 2
	hintDepth     = 2
	lateHintDepth = 5
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Normal, nil
	case Easy, Normal, Hard, Hint:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q: %w", s, game.ErrInvalidInput)
	}
}

// Depth is the search depth for b. Easy never searches; unknown tiers behave
// like Normal.
func (d Difficulty) Depth(b *game.Board) int {
	switch d {
	case Easy:
		return 0
	case Hard:
		return hardDepth
	case Hint:
		if b.Occupancy() > LateGameOccupancy {
			return lateHintDepth
		}
		return hintDepth
	default:
		return shallowDepth
	}
}

func (d Difficulty) String() string {
	return string(d)
}
