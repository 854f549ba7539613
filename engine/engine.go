package engine

import (
	"chainreaction/agent"
	"chainreaction/game"
)

const MaxTurns = 500

const NoWinner game.PlayerID = game.Unowned

// Turn is one seat's action and what it did to the board.
type Turn struct {
	Step     int
	Player   game.PlayerID
	Move     game.Move
	Passed   bool
	Cascade  game.Cascade // Zero value when Passed
	Decision agent.Decision
}

type Result struct {
	Winner game.PlayerID // NoWinner on stalemate or turn limit
	Board  *game.Board
	Turns  int
}

// Observer is notified as the game unfolds. Rendering, sound and effects hang
// off this; the engine never waits on them.
type Observer interface {
	OnTurn(turn Turn)
	OnGameOver(result Result)
}
