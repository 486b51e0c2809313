package game

import "hearth/card"

// LegalActions lists the moves open to me in w, Null excluded. It is where
// turn rules are enforced: minions that already acted cannot attack, the hero
// power works once per turn, and nothing is offered that me cannot afford or
// that a full battlefield would swallow. Identical cards in hand produce one
// candidate.
func (w *World) LegalActions(me PlayerID) []Action {
	s := w.side(me)
	opp := me.Opponent()
	enemies := w.side(opp).Intable

	var actions []Action
	seen := map[string]bool{}
	for _, c := range s.Inhands {
		if c.Cost > s.Mana || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		switch {
		case c.Minion:
			if len(s.Intable) < MaxBoard {
				actions = append(actions, MinionPlay{Player: me, Card: c})
			}
		case c.Effect.Kind == card.EffectDamage:
			actions = append(actions, SpellPlay{Player: me, Card: c, Target: HeroTarget(opp)})
			for _, e := range enemies {
				actions = append(actions, SpellPlay{Player: me, Card: c, Target: MinionTarget(opp, e)})
			}
		case c.Effect.Kind == card.EffectTransform:
			for _, e := range enemies {
				actions = append(actions, SpellPlay{Player: me, Card: c, Target: MinionTarget(opp, e)})
			}
		default:
			actions = append(actions, SpellPlay{Player: me, Card: c})
		}
	}

	if hp := s.HeroPower; hp.Name != "" && !hp.UsedThisTurn && hp.Cost <= s.Mana {
		actions = append(actions, HeroPowerAttack{Player: me, Target: HeroTarget(opp)})
		for _, e := range enemies {
			actions = append(actions, HeroPowerAttack{Player: me, Target: MinionTarget(opp, e)})
		}
	}

	for _, m := range s.Intable {
		if m.UsedThisTurn || m.Attack <= 0 {
			continue
		}
		actions = append(actions, MinionAttack{Player: me, Card: m, Target: HeroTarget(opp)})
		for _, e := range enemies {
			actions = append(actions, MinionAttack{Player: me, Card: m, Target: MinionTarget(opp, e)})
		}
	}
	return actions
}
