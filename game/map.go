package game

import (
	"fmt"
	"strings"
)

// Cell is one square of the grid. A blocked cell never holds orbs and never
// has an owner.
type Cell struct {
	Owner   PlayerID `json:"owner"`
	Count   int      `json:"count"`
	Blocked bool     `json:"blocked,omitempty"`
}

// Board is a fixed-size grid of cells stored row-major. Engine operations treat
// a Board as a value: they clone before mutating and never modify their input.
type Board struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells []Cell `json:"cells"`
}

// NewBoard returns an empty rows x cols board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board dimensions %dx%d: %w", rows, cols, ErrInvalidInput)
	}
	b := &Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
	for i := range b.Cells {
		b.Cells[i].Owner = Unowned
	}
	return b, nil
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{Rows: b.Rows, Cols: b.Cols, Cells: cells}
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// At returns a pointer into the board. It panics when (x, y) is out of bounds.
func (b *Board) At(x, y int) *Cell {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d board", x, y, b.Rows, b.Cols))
	}
	return &b.Cells[y*b.Cols+x]
}

// Block marks a cell as an obstacle and clears it.
func (b *Board) Block(x, y int) {
	*b.At(x, y) = Cell{Owner: Unowned, Blocked: true}
}

// Validate checks the board against its own dimensions, the player count and
// the blocked-cell invariant.
func (b *Board) Validate(players int) error {
	if b == nil {
		return fmt.Errorf("nil board: %w", ErrInvalidInput)
	}
	if b.Rows <= 0 || b.Cols <= 0 || len(b.Cells) != b.Rows*b.Cols {
		return fmt.Errorf("board %dx%d with %d cells: %w", b.Rows, b.Cols, len(b.Cells), ErrInvalidInput)
	}
	for i, c := range b.Cells {
		x, y := i%b.Cols, i/b.Cols
		if c.Count < 0 {
			return fmt.Errorf("cell (%d,%d) has negative count %d: %w", x, y, c.Count, ErrInvalidInput)
		}
		if c.Blocked && (c.Count != 0 || c.Owner != Unowned) {
			return fmt.Errorf("blocked cell (%d,%d) holds orbs or an owner: %w", x, y, ErrInvalidInput)
		}
		if c.Owner != Unowned && (c.Owner < 0 || int(c.Owner) >= players) {
			return fmt.Errorf("cell (%d,%d) owned by unknown player %d: %w", x, y, c.Owner, ErrInvalidInput)
		}
	}
	return nil
}

// ValidateMove checks that m targets an in-bounds, open cell that player may
// place on.
func (b *Board) ValidateMove(m Move, player PlayerID) error {
	if !b.InBounds(m.X, m.Y) {
		return fmt.Errorf("move (%d,%d) outside %dx%d board: %w", m.X, m.Y, b.Rows, b.Cols, ErrInvalidInput)
	}
	c := b.At(m.X, m.Y)
	if c.Blocked {
		return fmt.Errorf("move (%d,%d) on blocked cell: %w", m.X, m.Y, ErrIllegalMove)
	}
	if c.Owner != Unowned && c.Owner != player {
		return fmt.Errorf("move (%d,%d) on cell owned by player %d: %w", m.X, m.Y, c.Owner, ErrIllegalMove)
	}
	return nil
}

// LegalMoves lists, in scan order, the open cells that are unowned or owned by
// player.
func (b *Board) LegalMoves(player PlayerID) []Move {
	moves := []Move{}
	for i, c := range b.Cells {
		if c.Blocked || (c.Owner != Unowned && c.Owner != player) {
			continue
		}
		moves = append(moves, Move{X: i % b.Cols, Y: i / b.Cols})
	}
	return moves
}

// Occupancy is the fraction of open cells holding at least one orb.
func (b *Board) Occupancy() float64 {
	open, filled := 0, 0
	for _, c := range b.Cells {
		if c.Blocked {
			continue
		}
		open++
		if c.Count > 0 {
			filled++
		}
	}
	if open == 0 {
		return 0
	}
	return float64(filled) / float64(open)
}

// Orbs tallies orbs per owner.
func (b *Board) Orbs() map[PlayerID]int {
	orbs := make(map[PlayerID]int)
	for _, c := range b.Cells {
		if c.Owner != Unowned && c.Count > 0 {
			orbs[c.Owner] += c.Count
		}
	}
	return orbs
}

// String renders the board one row per line: "." empty, "#" blocked,
// otherwise owner and count such as "0:2".
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := b.At(x, y)
			switch {
			case c.Blocked:
				sb.WriteString("  #")
			case c.Owner == Unowned || c.Count == 0:
				sb.WriteString("  .")
			default:
				fmt.Fprintf(&sb, "%d:%d", c.Owner, c.Count)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
