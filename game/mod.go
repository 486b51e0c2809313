// Package game holds the snapshot/action layer of a match: live player
// records, the World snapshot built from them, the actions that mutate a
// World, and the sequences a search assembles from those actions.
package game

import "fmt"

// PlayerID is a player's fixed seat in a match.
type PlayerID uint8

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// MaxBoard is the battlefield capacity of one player.
const MaxBoard = 7

// MaxHand is the hand capacity of one player.
const MaxHand = 10

// Identifier is anything that names a seat: a PlayerID itself, a live
// player record, or a player built on top of one.
type Identifier interface {
	ID() PlayerID
}

func (p PlayerID) ID() PlayerID {
	return p
}

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p PlayerID) index() int {
	switch p {
	case Player1:
		return 0
	case Player2:
		return 1
	}
	panic(fmt.Sprintf("unknown player %d", p))
}

func (p PlayerID) String() string {
	return fmt.Sprintf("player%d", uint8(p))
}

// Evaluate scores a world between -1 and 1 from me's perspective.
type Evaluate func(w *World, me PlayerID) float64
