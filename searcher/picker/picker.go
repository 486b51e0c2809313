package picker

import (
	"hearth/game"
)

// Picker chooses one sequence out of the candidates found for a decision
// point. Implementations panic on an empty collection; a search always yields
// at least the empty sequence.
type Picker interface {
	Pick(c *game.Collection) *game.Sequence
}

// Observer is implemented by pickers that adjust themselves from outcomes.
type Observer interface {
	// PostAction runs after every action the owning player took and once more
	// for both players when the match ends. won is only meaningful then.
	PostAction(w *game.World, me game.PlayerID, matchEnd, won bool)
	PostMatch()
}

func mustHaveCandidates(c *game.Collection) {
	if c == nil || c.Len() == 0 {
		panic("no candidate sequences to pick from")
	}
}
