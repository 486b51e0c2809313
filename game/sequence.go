package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Sequence is the list of actions taken so far in a turn, starting with an
// implicit Null, together with the World they produced.
type Sequence struct {
	actions []Action
	world   *World
}

// NewSequence starts an empty sequence at w.
func NewSequence(w *World) *Sequence {
	return &Sequence{actions: []Action{Null{}}, world: w}
}

// Update records a and the World applying it produced.
func (s *Sequence) Update(a Action, w *World) {
	s.actions = append(s.actions, a)
	s.world = w
}

// Pop drops the latest action and rewinds to w, the World before it.
func (s *Sequence) Pop(w *World) {
	if len(s.actions) == 1 {
		panic("pop on an empty sequence")
	}
	s.actions = s.actions[:len(s.actions)-1]
	s.world = w
}

// Len counts the leading Null, so 1 means nothing has been played.
func (s *Sequence) Len() int {
	return len(s.actions)
}

// Actions returns the actions after the leading Null.
func (s *Sequence) Actions() []Action {
	return slices.Clone(s.actions[1:])
}

func (s *Sequence) World() *World {
	return s.world
}

// First returns the first real action, or Null if there is none.
func (s *Sequence) First() Action {
	if len(s.actions) == 1 {
		return Null{}
	}
	return s.actions[1]
}

// All reports whether every real action is of kind k.
func (s *Sequence) All(k Kind) bool {
	for _, a := range s.actions[1:] {
		if a.Kind() != k {
			return false
		}
	}
	return true
}

// No reports whether no real action is of any of kinds.
func (s *Sequence) No(kinds ...Kind) bool {
	for _, a := range s.actions[1:] {
		if slices.Contains(kinds, a.Kind()) {
			return false
		}
	}
	return true
}

// Last reports whether the latest action is of kind k.
func (s *Sequence) Last(k Kind) bool {
	return s.actions[len(s.actions)-1].Kind() == k
}

// Latest returns the most recent action, Null for an empty sequence.
func (s *Sequence) Latest() Action {
	return s.actions[len(s.actions)-1]
}

// Copy is deep: the copy's World and action list are its own.
func (s *Sequence) Copy() *Sequence {
	return &Sequence{actions: slices.Clone(s.actions), world: s.world.Copy()}
}

func (s *Sequence) String() string {
	parts := make([]string, len(s.actions))
	for i, a := range s.actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// Collection holds the completed sequences reachable from one decision point.
type Collection struct {
	player PlayerID
	data   []*Sequence
}

// NewCollection starts an empty collection for the player about to act.
func NewCollection(player PlayerID) *Collection {
	return &Collection{player: player}
}

// Add stores a copy of s, so later search on s leaves the stored one intact.
func (c *Collection) Add(s *Sequence) {
	c.data = append(c.data, s.Copy())
}

// Player is the player the sequences belong to.
func (c *Collection) Player() PlayerID {
	return c.player
}

func (c *Collection) Len() int {
	return len(c.data)
}

func (c *Collection) At(i int) *Sequence {
	return c.data[i]
}

// Sequences returns the stored sequences in insertion order.
func (c *Collection) Sequences() []*Sequence {
	return slices.Clone(c.data)
}

func (c *Collection) String() string {
	var b strings.Builder
	b.WriteString("\nActionSequenceChoices:\n")
	for i, s := range c.data {
		fmt.Fprintf(&b, "Choice %d: %v\n", i, s)
	}
	return b.String()
}
