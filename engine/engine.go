// Package engine runs matches between two agents.
package engine

import (
	"hearth/experiments/metrics"
	"hearth/game"
)

// Agent is one seat at the table. The engine reads and writes its Record
// through World Build and Commit and calls the hooks in match order.
type Agent interface {
	game.Identifier
	Record() *game.Hero
	// TurnBeginInit prepares a turn and reports whether the match ended
	// because nothing could be drawn.
	TurnBeginInit(turn int) bool
	// SearchAndPickAction returns the next action; Null ends the turn.
	SearchAndPickAction(w *game.World) game.Action
	PostAction(w *game.World, matchEnd, won bool)
	PostMatch()
	// Moves returns the search metrics recorded since the last Reset.
	Moves() []metrics.MoveMetric
	Reset()
}

type Engine interface {
	// Run plays a match till one player wins
	Run() (winner string, gameMetric metrics.GameMetric, moveRecords []metrics.MoveRecord)
}
