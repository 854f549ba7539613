package agent

import "chainreaction/game"

// Agent plays one seat.
type Agent interface {
	// FindMove returns the seat's decision; ok is false when it must pass
	FindMove(b *game.Board, player game.PlayerID, players int) (decision Decision, ok bool, err error)
	Name() string
}

type tierAgent struct {
	selector   *Selector
	difficulty Difficulty
}

// NewTierAgent returns an agent that always plays at one difficulty.
func NewTierAgent(selector *Selector, difficulty Difficulty) Agent {
	return tierAgent{selector: selector, difficulty: difficulty}
}

func (a tierAgent) FindMove(b *game.Board, player game.PlayerID, players int) (Decision, bool, error) {
	return a.selector.SelectMove(b, player, a.difficulty, players)
}

func (a tierAgent) Name() string {
	return a.difficulty.String()
}
