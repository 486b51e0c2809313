package picker

import (
	"golang.org/x/exp/rand"

	"hearth/game"
)

type randomPicker struct {
	rng *rand.Rand
}

// NewRandom returns a picker that chooses uniformly.
func NewRandom(rng *rand.Rand) Picker {
	return &randomPicker{rng: rng}
}

func (p *randomPicker) Pick(c *game.Collection) *game.Sequence {
	mustHaveCandidates(c)
	return c.At(p.rng.Intn(c.Len()))
}
