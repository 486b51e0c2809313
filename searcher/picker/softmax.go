package picker

import (
	"math"

	"golang.org/x/exp/rand"

	"hearth/game"
)

const minTemperature = 0.01

// Softmax samples sequences with probability proportional to
// exp(score/temperature). The temperature is multiplied by decay after every
// match and never drops below minTemperature.
type Softmax struct {
	evaluate    game.Evaluate
	temperature float64
	decay       float64
	rng         *rand.Rand
}

func NewSoftmax(evaluate game.Evaluate, temperature, decay float64, rng *rand.Rand) *Softmax {
	if temperature < minTemperature {
		temperature = minTemperature
	}
	if decay <= 0 || decay > 1 {
		decay = 1
	}
	return &Softmax{evaluate: evaluate, temperature: temperature, decay: decay, rng: rng}
}

func (p *Softmax) Temperature() float64 {
	return p.temperature
}

func (p *Softmax) Pick(c *game.Collection) *game.Sequence {
	mustHaveCandidates(c)
	policy := adjustTemperature(scores(c, p.evaluate), p.temperature)
	return c.At(sample(policy, p.rng))
}

func (p *Softmax) PostAction(w *game.World, me game.PlayerID, matchEnd, won bool) {}

func (p *Softmax) PostMatch() {
	p.temperature = math.Max(p.temperature*p.decay, minTemperature)
}

func adjustTemperature(values []float64, temperature float64) []float64 {
	// Shift by the maximum so exp never overflows
	maxValue := values[0]
	for _, v := range values {
		maxValue = math.Max(maxValue, v)
	}
	sum := 0.0
	adjusted := make([]float64, len(values))
	for i, v := range values {
		prob := math.Exp((v - maxValue) / temperature)
		sum += prob
		adjusted[i] = prob
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(policy []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
