// Package player keeps the live record of one seat and decides its actions
// through a searcher and a picker.
package player

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hearth/card"
	"hearth/experiments/metrics"
	"hearth/game"
	"hearth/searcher"
	"hearth/searcher/picker"
)

const (
	MaxMana       = 10
	FirstHand     = 3
	SecondHand    = 4
	DefaultHealth = 14
	coinName      = "The Coin"
)

type Config struct {
	Seat        game.PlayerID
	Name        string
	Library     *card.Library
	Deck        []string
	StartHealth int
	Searcher    *searcher.Searcher
	Picker      picker.Picker
	Rng         *rand.Rand
}

// Player is a Hero plus everything needed to play it.
type Player struct {
	*game.Hero
	library     *card.Library
	deck        []string
	startHealth int
	searcher    *searcher.Searcher
	picker      picker.Picker
	rng         *rand.Rand
	turn        int
	moves       []metrics.MoveMetric
}

// New returns a player ready for its first match.
func New(cfg Config) (*Player, error) {
	if cfg.Seat != game.Player1 && cfg.Seat != game.Player2 {
		return nil, fmt.Errorf("invalid seat %d", cfg.Seat)
	}
	if cfg.Library == nil || cfg.Picker == nil || cfg.Rng == nil {
		return nil, fmt.Errorf("%s: library, picker and rng are required", cfg.Name)
	}
	if cfg.Searcher == nil {
		cfg.Searcher = searcher.New()
	}
	if cfg.StartHealth <= 0 {
		cfg.StartHealth = DefaultHealth
	}
	if cfg.Name == "" {
		cfg.Name = cfg.Seat.String()
	}
	p := &Player{
		Hero:        &game.Hero{Seat: cfg.Seat, Name: cfg.Name},
		library:     cfg.Library,
		deck:        append([]string(nil), cfg.Deck...),
		startHealth: cfg.StartHealth,
		searcher:    cfg.Searcher,
		picker:      cfg.Picker,
		rng:         cfg.Rng,
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) Record() *game.Hero {
	return p.Hero
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%s) health: %d, mana: %d/%d, hand: %d, table: %d, deck: %d",
		p.Name, p.Seat, p.Health, p.Mana, p.MaxMana, len(p.Inhands), len(p.Intable), p.Deck.Remaining())
}

// TurnBeginInit grows and refills mana, readies the table and the hero power
// and draws a card. It reports true when the deck had nothing to draw, which
// ends the match.
func (p *Player) TurnBeginInit(turn int) bool {
	p.turn = turn
	p.MaxMana = min(p.MaxMana+1, MaxMana)
	p.Mana = p.MaxMana
	p.HeroPower.UsedThisTurn = false
	for i := range p.Intable {
		p.Intable[i].UsedThisTurn = false
	}

	c, ok := p.Deck.Draw()
	if !ok {
		return true
	}
	p.take(c)
	return false
}

func (p *Player) take(c card.Card) {
	if len(p.Inhands) >= game.MaxHand {
		log.Debug().Msgf("%s burns %s, hand is full", p.Name, c)
		return
	}
	p.Inhands = append(p.Inhands, c)
}

// SearchAndPickAction searches w for every sequence this turn allows, lets
// the picker choose one and returns its first action. Null ends the turn.
func (p *Player) SearchAndPickAction(w *game.World) game.Action {
	candidates, metric := p.searcher.Search(w, p.Seat)
	p.moves = append(p.moves, metrics.MoveMetric{
		Turn:         p.turn,
		Player:       int(p.Seat),
		SearchMetric: metric,
	})
	chosen := p.picker.Pick(candidates)
	log.Debug().Msgf("%s picks %v out of %d sequences", p.Name, chosen, candidates.Len())
	return chosen.First()
}

// PostAction forwards the outcome of an action to pickers that learn.
func (p *Player) PostAction(w *game.World, matchEnd, won bool) {
	if o, ok := p.picker.(picker.Observer); ok {
		o.PostAction(w, p.Seat, matchEnd, won)
	}
}

func (p *Player) PostMatch() {
	if o, ok := p.picker.(picker.Observer); ok {
		o.PostMatch()
	}
}

// Moves returns the search metrics recorded since the last Reset.
func (p *Player) Moves() []metrics.MoveMetric {
	return p.moves
}

// Reset starts a new match: full health, empty table, a freshly shuffled deck
// and the opening hand. The second player also gets The Coin.
func (p *Player) Reset() {
	if err := p.reset(); err != nil {
		panic(err)
	}
}

func (p *Player) reset() error {
	deck, err := card.NewDeck(p.library, uint8(p.Seat), p.deck, p.rng)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	*p.Hero = game.Hero{
		Seat:      p.Seat,
		Name:      p.Name,
		Health:    p.startHealth,
		HeroPower: card.Fireblast(),
		Deck:      deck,
	}
	p.turn = 0
	p.moves = nil

	opening := FirstHand
	if p.Seat == game.Player2 {
		opening = SecondHand
	}
	for i := 0; i < opening; i++ {
		c, ok := p.Deck.Draw()
		if !ok {
			break
		}
		p.take(c)
	}
	if p.Seat == game.Player2 {
		coin, ok := p.library.Instantiate(coinName, card.InstanceKey(uint8(p.Seat), 0))
		if !ok {
			return fmt.Errorf("%s: library has no %q", p.Name, coinName)
		}
		p.take(coin)
	}
	return nil
}
