package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"hearth/card"
)

// Kind tags the action variants.
type Kind int

const (
	NullKind Kind = iota
	MinionPlayKind
	SpellPlayKind
	MinionAttackKind
	HeroPowerKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case MinionPlayKind:
		return "MinionPlay"
	case SpellPlayKind:
		return "SpellPlay"
	case MinionAttackKind:
		return "MinionAttack"
	case HeroPowerKind:
		return "HeroPowerAttack"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is one move. Apply mutates the World it is given and nothing else.
// Operands are looked up by key inside that World, so an action authored
// against one snapshot can be replayed on any copy of it; when an operand is
// missing the action does nothing.
type Action interface {
	Kind() Kind
	Actor() PlayerID
	Apply(w *World)
	String() string
}

// Null ends the turn.
type Null struct{}

func (Null) Kind() Kind      { return NullKind }
func (Null) Actor() PlayerID { return 0 }
func (Null) Apply(w *World)  {}
func (Null) String() string  { return "Null" }

// MinionPlay moves a minion from hand to battlefield.
type MinionPlay struct {
	Player PlayerID
	Card   card.Card
}

func (a MinionPlay) Kind() Kind      { return MinionPlayKind }
func (a MinionPlay) Actor() PlayerID { return a.Player }

// Apply spends the card and its mana. A full battlefield swallows the card.
func (a MinionPlay) Apply(w *World) {
	s := w.side(a.Player)
	i := s.handIndex(a.Card.Key)
	if i < 0 {
		return
	}
	c := s.Inhands[i]
	s.Inhands = slices.Delete(s.Inhands, i, i+1)
	s.Mana -= c.Cost
	if len(s.Intable) < MaxBoard {
		c.UsedThisTurn = !c.Charge
		s.Intable = append(s.Intable, c)
	}
}

func (a MinionPlay) String() string {
	return fmt.Sprintf("MinionPlay(%v)", a.Card)
}

// SpellPlay casts a spell from hand, optionally at a target.
type SpellPlay struct {
	Player PlayerID
	Card   card.Card
	Target Target
}

func (a SpellPlay) Kind() Kind      { return SpellPlayKind }
func (a SpellPlay) Actor() PlayerID { return a.Player }

func (a SpellPlay) Apply(w *World) {
	s := w.side(a.Player)
	i := s.handIndex(a.Card.Key)
	if i < 0 {
		return
	}
	c := s.Inhands[i]
	s.Inhands = slices.Delete(s.Inhands, i, i+1)
	s.Mana -= c.Cost
	w.resolve(a.Player, c.Effect, a.Target)
}

func (w *World) resolve(caster PlayerID, e card.Effect, t Target) {
	switch e.Kind {
	case card.EffectManaThisTurn:
		w.side(caster).Mana += e.Amount
	case card.EffectDamage:
		w.damage(t, e.Amount)
	case card.EffectTransform:
		if t.IsZero() || t.IsHero() {
			return
		}
		ts := w.side(t.Player)
		j := ts.tableIndex(t.Unit)
		if j < 0 {
			return
		}
		cs := w.side(caster)
		cs.Minted++
		ts.Intable[j] = card.Token(card.TokenKey(uint8(caster), cs.Minted), e)
	}
}

func (w *World) damage(t Target, amount int) {
	if t.IsZero() {
		return
	}
	s := w.side(t.Player)
	if t.IsHero() {
		s.Health -= amount
		return
	}
	if j := s.tableIndex(t.Unit); j >= 0 {
		s.Intable[j].Health -= amount
	}
}

func (a SpellPlay) String() string {
	if a.Target.IsZero() {
		return fmt.Sprintf("SpellPlay(%v)", a.Card)
	}
	return fmt.Sprintf("SpellPlay(%v -> %v)", a.Card, a.Target)
}

// MinionAttack sends a battlefield minion at a hero or minion. Whether the
// minion may attack this turn is for the caller to decide.
type MinionAttack struct {
	Player PlayerID
	Card   card.Card
	Target Target
}

func (a MinionAttack) Kind() Kind      { return MinionAttackKind }
func (a MinionAttack) Actor() PlayerID { return a.Player }

// Apply reads the attacker's live stats from w. Minions trade damage
// simultaneously; the attacker is marked used even if its target is gone.
func (a MinionAttack) Apply(w *World) {
	if !a.Card.Minion {
		return
	}
	s := w.side(a.Player)
	i := s.tableIndex(a.Card.Key)
	if i < 0 {
		return
	}
	src := &s.Intable[i]
	switch {
	case a.Target.IsZero():
	case a.Target.IsHero():
		w.side(a.Target.Player).Health -= src.Attack
	default:
		ts := w.side(a.Target.Player)
		if j := ts.tableIndex(a.Target.Unit); j >= 0 {
			dst := &ts.Intable[j]
			dst.Health -= src.Attack
			src.Health -= dst.Attack
		}
	}
	src.UsedThisTurn = true
}

func (a MinionAttack) String() string {
	return fmt.Sprintf("MinionAttack(%v -> %v)", a.Card, a.Target)
}

// HeroPowerAttack spends the hero power's cost and deals its damage. It does
// not lock the hero power; Settle does.
type HeroPowerAttack struct {
	Player PlayerID
	Target Target
}

func (a HeroPowerAttack) Kind() Kind      { return HeroPowerKind }
func (a HeroPowerAttack) Actor() PlayerID { return a.Player }

func (a HeroPowerAttack) Apply(w *World) {
	s := w.side(a.Player)
	hp := s.HeroPower
	s.Mana -= hp.Cost
	w.damage(a.Target, hp.Attack)
}

func (a HeroPowerAttack) String() string {
	return fmt.Sprintf("HeroPowerAttack(%v)", a.Target)
}
