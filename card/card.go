// Package card holds the card records consumed by the game engine: keyed card
// instances, typed spell effects, the card library and shuffled decks.
package card

import "fmt"

// Key identifies one card instance within a match. Snapshots are deep copies,
// so actions find "the same card" in a copied world by key rather than by
// pointer identity.
type Key uint32

// NoKey is never assigned to a card.
const NoKey Key = 0

const tokenBit Key = 1 << 31

// InstanceKey returns the key of the n-th card instance dealt to owner.
func InstanceKey(owner uint8, n int) Key {
	return Key(owner)<<24 | Key(n&0xFFFFFF)
}

// TokenKey returns the key of the n-th token created by owner during a match.
// Token keys never collide with instance keys.
func TokenKey(owner uint8, n int) Key {
	return tokenBit | Key(owner)<<24 | Key(n&0xFFFFFF)
}

// IsToken reports whether k was minted for a token.
func (k Key) IsToken() bool {
	return k&tokenBit != 0
}

// Card is a card instance. It is a plain value: copying a slice of cards
// copies every card.
type Card struct {
	Key          Key
	Name         string
	Cost         int
	Attack       int
	Health       int
	Minion       bool
	Charge       bool
	Effect       Effect
	UsedThisTurn bool
}

// Token returns a fresh minion created by a transform effect.
func Token(key Key, e Effect) Card {
	return Card{
		Key:    key,
		Name:   e.Into,
		Cost:   1,
		Attack: e.Attack,
		Health: e.Health,
		Minion: true,
	}
}

func (c Card) String() string {
	if c.Minion {
		return fmt.Sprintf("%s(%d/%d)", c.Name, c.Attack, c.Health)
	}
	return c.Name
}

// HeroPower is the hero's repeatable ability.
type HeroPower struct {
	Name         string
	Cost         int
	Attack       int
	UsedThisTurn bool
}

// Fireblast is the mage hero power: 2 mana, 1 damage.
func Fireblast() HeroPower {
	return HeroPower{Name: "Fireblast", Cost: 2, Attack: 1}
}

func (h HeroPower) String() string {
	return h.Name
}
