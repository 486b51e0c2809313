package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/slices"

	"hearth/card"
)

// Side is one player's part of a World.
type Side struct {
	Intable   []card.Card
	Inhands   []card.Card
	Health    int
	Mana      int
	HeroPower card.HeroPower
	RemDeck   int
	Minted    int
}

func (s Side) clone() Side {
	s.Intable = slices.Clone(s.Intable)
	s.Inhands = slices.Clone(s.Inhands)
	return s
}

func (s *Side) tableIndex(key card.Key) int {
	return slices.IndexFunc(s.Intable, func(c card.Card) bool { return c.Key == key })
}

func (s *Side) handIndex(key card.Key) int {
	return slices.IndexFunc(s.Inhands, func(c card.Card) bool { return c.Key == key })
}

// World is a snapshot of both players at one decision point. It never shares
// mutable memory with the Hero records it was built from or with any other
// World, so a search may mutate it freely.
type World struct {
	Turn  int
	sides [2]Side
}

// Build copies the fields of p1 and p2 a World carries.
func Build(p1, p2 *Hero, turn int) *World {
	if p1.Seat != Player1 || p2.Seat != Player2 {
		panic(fmt.Sprintf("heroes seated as %d and %d", p1.Seat, p2.Seat))
	}
	w := &World{Turn: turn}
	for i, h := range []*Hero{p1, p2} {
		w.sides[i] = Side{
			Intable:   slices.Clone(h.Intable),
			Inhands:   slices.Clone(h.Inhands),
			Health:    h.Health,
			Mana:      h.Mana,
			HeroPower: h.HeroPower,
			RemDeck:   h.Deck.Remaining(),
			Minted:    h.Minted,
		}
	}
	return w
}

// NewWorld assembles a World from explicit sides, copying them.
func NewWorld(turn int, p1, p2 Side) *World {
	return &World{Turn: turn, sides: [2]Side{p1.clone(), p2.clone()}}
}

// Commit overwrites the records' hand, battlefield, health, mana and hero
// power with this World's. Decks and other bookkeeping are left alone.
func (w *World) Commit(p1, p2 *Hero) {
	for _, h := range []*Hero{p1, p2} {
		s := w.side(h).clone()
		h.Intable = s.Intable
		h.Inhands = s.Inhands
		h.Health = s.Health
		h.Mana = s.Mana
		h.HeroPower = s.HeroPower
		h.Minted = s.Minted
	}
}

// Copy returns a deep copy.
func (w *World) Copy() *World {
	return &World{Turn: w.Turn, sides: [2]Side{w.sides[0].clone(), w.sides[1].clone()}}
}

func (w *World) side(who Identifier) *Side {
	return &w.sides[who.ID().index()]
}

// Side returns a copy of who's side.
func (w *World) Side(who Identifier) Side {
	return w.side(who).clone()
}

func (w *World) Health(who Identifier) int {
	return w.side(who).Health
}

func (w *World) Mana(who Identifier) int {
	return w.side(who).Mana
}

func (w *World) RemDeck(who Identifier) int {
	return w.side(who).RemDeck
}

func (w *World) HeroPower(who Identifier) card.HeroPower {
	return w.side(who).HeroPower
}

func (w *World) HeroPowerUsed(who Identifier) bool {
	return w.side(who).HeroPower.UsedThisTurn
}

// Inhands returns who's hand. The slice belongs to the World and must not be
// modified.
func (w *World) Inhands(who Identifier) []card.Card {
	return w.side(who).Inhands
}

// Intable returns who's battlefield. The slice belongs to the World and must
// not be modified.
func (w *World) Intable(who Identifier) []card.Card {
	return w.side(who).Intable
}

func (w *World) LenInhands(who Identifier) int {
	return len(w.side(who).Inhands)
}

func (w *World) LenIntable(who Identifier) int {
	return len(w.side(who).Intable)
}

// InhandsHasCard reports whether who holds a card named name.
func (w *World) InhandsHasCard(who Identifier, name string) bool {
	return slices.ContainsFunc(w.side(who).Inhands, func(c card.Card) bool { return c.Name == name })
}

// Loser reports the player whose health is at or below zero. Player1 is
// checked first, so a world where both heroes are dead is a Player2 win.
func (w *World) Loser() (PlayerID, bool) {
	switch {
	case w.sides[0].Health <= 0:
		return Player1, true
	case w.sides[1].Health <= 0:
		return Player2, true
	}
	return 0, false
}

// MarkHeroPowerUsed locks who's hero power for the rest of the turn.
func (w *World) MarkHeroPowerUsed(who Identifier) {
	w.side(who).HeroPower.UsedThisTurn = true
}

// Settle performs the bookkeeping that follows an applied action: a hero
// power becomes used, and minions at zero health or less leave the board.
func (w *World) Settle(a Action) {
	if a.Kind() == HeroPowerKind {
		w.MarkHeroPowerUsed(a.Actor())
	}
	for i := range w.sides {
		s := &w.sides[i]
		s.Intable = slices.DeleteFunc(s.Intable, func(c card.Card) bool { return c.Health <= 0 })
	}
}

// Play returns a new World with a applied and settled. w is unchanged.
func (w *World) Play(a Action) *World {
	next := w.Copy()
	a.Apply(next)
	next.Settle(a)
	return next
}

// Hash summarises both sides; the turn number is left out so that worlds
// reached by different sequences within one turn compare equal.
func (w *World) Hash() uint64 {
	hasher := fnv.New64a()
	put := func(v int64) {
		binary.Write(hasher, binary.LittleEndian, v)
	}
	flag := func(b bool) int64 {
		if b {
			return 1
		}
		return 0
	}
	for _, s := range w.sides {
		put(int64(s.Health))
		put(int64(s.Mana))
		put(int64(s.RemDeck))
		put(flag(s.HeroPower.UsedThisTurn))
		put(int64(len(s.Intable)))
		for _, c := range s.Intable {
			put(int64(c.Key))
			put(int64(c.Attack))
			put(int64(c.Health))
			put(flag(c.UsedThisTurn))
		}
		put(int64(len(s.Inhands)))
		for _, c := range s.Inhands {
			put(int64(c.Key))
		}
	}
	return hasher.Sum64()
}

func (w *World) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turn %d\n", w.Turn)
	for i, p := range []PlayerID{Player1, Player2} {
		if i > 0 {
			b.WriteString("-----------------------------------------------\n")
		}
		s := w.side(p)
		fmt.Fprintf(&b, "%s. health: %d, mana: %d, deck: %d\n", p, s.Health, s.Mana, s.RemDeck)
		fmt.Fprintf(&b, "intable: %v\n", s.Intable)
		fmt.Fprintf(&b, "inhands: %v\n", s.Inhands)
	}
	return b.String()
}
