package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hearth/card"
)

var library = card.NewLibrary()

func instance(t *testing.T, name string, owner PlayerID, n int) card.Card {
	t.Helper()
	c, ok := library.Instantiate(name, card.InstanceKey(uint8(owner), n))
	require.True(t, ok, "unknown card %q", name)
	return c
}

func onBoard(c card.Card) card.Card {
	c.UsedThisTurn = false
	return c
}

func newHeroes() (*Hero, *Hero) {
	p1 := &Hero{Seat: Player1, Name: "player1", Health: 14, Mana: 10, MaxMana: 10, HeroPower: card.Fireblast()}
	p2 := &Hero{Seat: Player2, Name: "player2", Health: 14, Mana: 10, MaxMana: 10, HeroPower: card.Fireblast()}
	return p1, p2
}
