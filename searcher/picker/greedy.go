package picker

import (
	"golang.org/x/exp/rand"

	"hearth/game"
)

const epsilon = 1e-9

type greedyPicker struct {
	evaluate game.Evaluate
	rng      *rand.Rand
}

// NewGreedy returns a picker that takes the sequence whose final world
// evaluates best for the acting player. Ties are broken at random.
func NewGreedy(evaluate game.Evaluate, rng *rand.Rand) Picker {
	return &greedyPicker{evaluate: evaluate, rng: rng}
}

func (p *greedyPicker) Pick(c *game.Collection) *game.Sequence {
	mustHaveCandidates(c)
	return c.At(findMax(scores(c, p.evaluate), p.rng))
}

func scores(c *game.Collection, evaluate game.Evaluate) []float64 {
	values := make([]float64, c.Len())
	for i, s := range c.Sequences() {
		values[i] = evaluate(s.World(), c.Player())
	}
	return values
}

func findMax(values []float64, rng *rand.Rand) int {
	var best []int
	maxValue := values[0]
	for i, v := range values {
		switch {
		case v > maxValue+epsilon:
			maxValue = v
			best = append(best[:0], i)
		case v >= maxValue-epsilon:
			best = append(best, i)
		}
	}
	return best[rng.Intn(len(best))]
}
