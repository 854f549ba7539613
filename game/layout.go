package game

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is the on-disk description of a starting board.
//
//	rows: 5
//	cols: 5
//	blocked:
//	  - {x: 2, y: 2}
//	orbs:
//	  - {x: 0, y: 0, owner: 1, count: 1}
type Layout struct {
	Rows    int         `yaml:"rows"`
	Cols    int         `yaml:"cols"`
	Blocked []Coord     `yaml:"blocked"`
	Orbs    []LayoutOrb `yaml:"orbs"`
}

type LayoutOrb struct {
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
	Owner PlayerID `yaml:"owner"`
	Count int      `yaml:"count"`
}

// LoadLayout reads a YAML layout file and builds a board for players seats.
func LoadLayout(path string, players int) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	return ReadLayout(f, players)
}

func ReadLayout(r io.Reader, players int) (*Board, error) {
	var layout Layout
	if err := yaml.NewDecoder(r).Decode(&layout); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	return layout.Board(players)
}

// Board builds and validates the board the layout describes.
func (l Layout) Board(players int) (*Board, error) {
	b, err := NewBoard(l.Rows, l.Cols)
	if err != nil {
		return nil, err
	}
	for _, at := range l.Blocked {
		if !b.InBounds(at.X, at.Y) {
			return nil, fmt.Errorf("blocked cell (%d,%d) outside board: %w", at.X, at.Y, ErrInvalidInput)
		}
		b.Block(at.X, at.Y)
	}
	for _, orb := range l.Orbs {
		if !b.InBounds(orb.X, orb.Y) {
			return nil, fmt.Errorf("orb at (%d,%d) outside board: %w", orb.X, orb.Y, ErrInvalidInput)
		}
		c := b.At(orb.X, orb.Y)
		c.Owner = orb.Owner
		c.Count = orb.Count
	}
	if err := b.Validate(players); err != nil {
		return nil, err
	}
	return b, nil
}
