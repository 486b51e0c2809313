package card

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Def is a card definition as it appears in a library file.
type Def struct {
	Name   string `yaml:"name"`
	Cost   int    `yaml:"cost"`
	Attack int    `yaml:"attack"`
	Health int    `yaml:"health"`
	Minion bool   `yaml:"minion"`
	Charge bool   `yaml:"charge"`
	Spell  string `yaml:"spell"`
}

// Library maps card names to definitions.
type Library struct {
	defs map[string]Def
}

var classic = []Def{
	{Name: "The Coin", Cost: 0, Spell: "this_turn_mana+1"},
	{Name: "Sheep", Cost: 1, Attack: 1, Health: 1, Minion: true},
	{Name: "Mana Wyrm", Cost: 1, Attack: 1, Health: 3, Minion: true},
	{Name: "Mirror Image", Cost: 1, Spell: "summon_two_0/2_minions"},
	{Name: "Bloodfen Raptor", Cost: 2, Attack: 3, Health: 2, Minion: true},
	{Name: "Bluegill Warriors", Cost: 2, Attack: 2, Health: 1, Minion: true, Charge: true},
	{Name: "River Crocolisk", Cost: 2, Attack: 2, Health: 3, Minion: true},
	{Name: "Magma Rager", Cost: 3, Attack: 5, Health: 1, Minion: true},
	{Name: "Wolfrider", Cost: 3, Attack: 3, Health: 1, Minion: true, Charge: true},
	{Name: "Chillwind Yeti", Cost: 4, Attack: 4, Health: 5, Minion: true},
	{Name: "Fireball", Cost: 4, Spell: "damage_to_a_target_6"},
	{Name: "Silvermoon Guardian", Cost: 4, Attack: 3, Health: 3, Minion: true},
	{Name: "Oasis Snapjaw", Cost: 4, Attack: 2, Health: 7, Minion: true},
	{Name: "Polymorph", Cost: 4, Spell: "transform_to_a_1/1sheep"},
	{Name: "Stormwind Knight", Cost: 4, Attack: 2, Health: 5, Minion: true, Charge: true},
}

// NewLibrary returns a library holding the classic mage card set.
func NewLibrary() *Library {
	l := &Library{defs: make(map[string]Def, len(classic))}
	for _, d := range classic {
		l.defs[d.Name] = d
	}
	return l
}

type libraryFile struct {
	Cards []Def `yaml:"cards"`
}

// Load adds the definitions read from a YAML document to the library,
// replacing definitions with the same name.
func (l *Library) Load(r io.Reader) error {
	var f libraryFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decode card library: %w", err)
	}
	for i, d := range f.Cards {
		if d.Name == "" {
			return fmt.Errorf("card %d: missing name", i)
		}
		if d.Cost < 0 {
			return fmt.Errorf("card %q: negative cost %d", d.Name, d.Cost)
		}
		if d.Minion && d.Spell != "" {
			return fmt.Errorf("card %q: a minion cannot carry a spell effect", d.Name)
		}
		l.defs[d.Name] = d
	}
	return nil
}

// Instantiate creates a card instance of the named definition.
func (l *Library) Instantiate(name string, key Key) (Card, bool) {
	d, ok := l.defs[name]
	if !ok {
		return Card{}, false
	}
	c := Card{
		Key:    key,
		Name:   d.Name,
		Cost:   d.Cost,
		Attack: d.Attack,
		Health: d.Health,
		Minion: d.Minion,
		Charge: d.Charge,
	}
	if !d.Minion {
		c.Effect = ParseEffect(d.Spell)
	}
	return c, true
}

// Names returns the sorted names of every definition.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
