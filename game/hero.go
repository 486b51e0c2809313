package game

import "hearth/card"

// Hero is the authoritative record of one player. Only Commit writes the
// fields a World carries; the rest is the player's own bookkeeping.
type Hero struct {
	Seat      PlayerID
	Name      string
	Health    int
	Mana      int
	MaxMana   int
	Intable   []card.Card
	Inhands   []card.Card
	HeroPower card.HeroPower
	Deck      *card.Deck
	Minted    int
}

func (h *Hero) ID() PlayerID {
	return h.Seat
}
