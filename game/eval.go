package game

// EvaluateBoard weighs hero health, battlefield attack and battlefield health
// equally. A decided world scores 1 or -1.
func EvaluateBoard(w *World, me PlayerID) float64 {
	if loser, ok := w.Loser(); ok {
		if loser == me {
			return -1
		}
		return 1
	}
	opp := me.Opponent()
	healthScore := normalize(float64(w.Health(me)), float64(w.Health(opp)))
	attackScore := normalize(boardAttack(w, me), boardAttack(w, opp))
	toughnessScore := normalize(boardHealth(w, me), boardHealth(w, opp))
	return (healthScore + attackScore + toughnessScore) / 3.0
}

// EvaluateFace only cares about the health race.
func EvaluateFace(w *World, me PlayerID) float64 {
	if loser, ok := w.Loser(); ok {
		if loser == me {
			return -1
		}
		return 1
	}
	return normalize(float64(w.Health(me)), float64(w.Health(me.Opponent())))
}

func boardAttack(w *World, p PlayerID) float64 {
	total := 0.0
	for _, c := range w.Intable(p) {
		total += float64(c.Attack)
	}
	return total
}

func boardHealth(w *World, p PlayerID) float64 {
	total := 0.0
	for _, c := range w.Intable(p) {
		total += float64(c.Health)
	}
	return total
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
