package engine

import (
	"fmt"
	"io"
)

// TextObserver prints every turn and the board after it.
type TextObserver struct {
	w io.Writer
}

func NewTextObserver(w io.Writer) *TextObserver {
	return &TextObserver{w: w}
}

func (o *TextObserver) OnTurn(turn Turn) {
	if turn.Passed {
		fmt.Fprintf(o.w, "turn %d: player %d passes\n", turn.Step, turn.Player)
		return
	}
	fmt.Fprintf(o.w, "turn %d: player %d plays (%d,%d), %d waves\n%s\n",
		turn.Step, turn.Player, turn.Move.X, turn.Move.Y, len(turn.Cascade.Waves), turn.Cascade.Board)
}

func (o *TextObserver) OnGameOver(result Result) {
	if result.Winner == NoWinner {
		fmt.Fprintf(o.w, "game over after %d turns: no winner\n", result.Turns)
		return
	}
	fmt.Fprintf(o.w, "game over after %d turns: player %d wins\n", result.Turns, result.Winner)
}
