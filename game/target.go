package game

import (
	"fmt"

	"hearth/card"
)

// Target locates the receiver of an attack or spell: a player's hero, or one
// of the player's minions by key. The zero Target names nothing.
type Target struct {
	Player PlayerID
	Unit   card.Key
	Name   string
}

// HeroTarget targets p's hero.
func HeroTarget(p PlayerID) Target {
	return Target{Player: p, Name: "hero"}
}

// MinionTarget targets the minion c on p's battlefield.
func MinionTarget(p PlayerID, c card.Card) Target {
	return Target{Player: p, Unit: c.Key, Name: c.Name}
}

func (t Target) IsHero() bool {
	return t.Unit == card.NoKey
}

func (t Target) IsZero() bool {
	return t.Player == 0
}

func (t Target) String() string {
	if t.IsZero() {
		return "none"
	}
	if t.IsHero() {
		return fmt.Sprintf("%s:hero", t.Player)
	}
	return fmt.Sprintf("%s:%s#%d", t.Player, t.Name, t.Unit)
}
