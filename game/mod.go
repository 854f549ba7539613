package game

import "errors"

// PlayerID identifies a seat in [0, players). Unowned is never a valid seat.
type PlayerID int

const Unowned PlayerID = -1

// Reserved scores for boards where exactly one side holds every orb
const (
	Win  = 10000.0
	Loss = -Win
)

// MaxWaves bounds cascade resolution. Some boards retrigger each other forever.
const MaxWaves = 200

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
)

// Move places one orb on the cell at column X, row Y.
type Move struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Coord is a cell coordinate. It shares Move's shape since every placement
// targets exactly one cell.
type Coord = Move

// IsTerminal reports whether score carries a Win or Loss magnitude.
func IsTerminal(score float64) bool {
	return score >= Win || score <= Loss
}
