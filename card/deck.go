package card

import (
	"fmt"

	"golang.org/x/exp/rand"
)

var deckLists = map[string][]string{
	"mage": {
		"Mana Wyrm", "Mirror Image",
		"Bloodfen Raptor", "Bloodfen Raptor", "Bluegill Warriors", "River Crocolisk", "River Crocolisk",
		"Magma Rager", "Magma Rager", "Wolfrider", "Wolfrider",
		"Chillwind Yeti", "Chillwind Yeti", "Fireball", "Fireball", "Silvermoon Guardian",
		"Oasis Snapjaw", "Oasis Snapjaw", "Polymorph", "Polymorph", "Stormwind Knight", "Stormwind Knight",
	},
	// Every card deals 6 damage, so a policy that learns anything wins quickly.
	"fireball": repeat("Fireball", 30),
}

func repeat(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name
	}
	return out
}

// DeckList returns a copy of a named deck list.
func DeckList(name string) ([]string, bool) {
	list, ok := deckLists[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// Deck is an ordered pile of card instances drawn from the top.
type Deck struct {
	cards []Card
}

// NewDeck instantiates names for owner and shuffles them with rng. A nil rng
// keeps the list order.
func NewDeck(lib *Library, owner uint8, names []string, rng *rand.Rand) (*Deck, error) {
	cards := make([]Card, 0, len(names))
	for i, name := range names {
		c, ok := lib.Instantiate(name, InstanceKey(owner, i+1))
		if !ok {
			return nil, fmt.Errorf("deck card %d: unknown card %q", i, name)
		}
		cards = append(cards, c)
	}
	if rng != nil {
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}
	return &Deck{cards: cards}, nil
}

// Draw removes and returns the top card. It reports false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Remaining is the number of cards left to draw.
func (d *Deck) Remaining() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}
