package card

import (
	"fmt"
	"strconv"
	"strings"
)

// EffectKind is the closed set of spell effects the engine resolves.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectManaThisTurn
	EffectDamage
	EffectTransform
)

// Effect is a spell effect parsed once from its tag. Amount applies to mana
// and damage effects; Into, Attack and Health describe a transform target.
type Effect struct {
	Kind   EffectKind
	Tag    string
	Amount int
	Into   string
	Attack int
	Health int
}

const (
	manaPrefix      = "this_turn_mana+"
	damagePrefix    = "damage_to_a_target_"
	transformPrefix = "transform_to_a_"
)

// ParseEffect resolves a spell tag such as "damage_to_a_target_6". Tags it
// does not recognise yield an EffectNone that keeps the tag, so casting the
// spell still spends the card and its mana.
func ParseEffect(tag string) Effect {
	e := Effect{Kind: EffectNone, Tag: tag}
	switch {
	case strings.HasPrefix(tag, manaPrefix):
		if n, err := strconv.Atoi(strings.TrimPrefix(tag, manaPrefix)); err == nil {
			e.Kind, e.Amount = EffectManaThisTurn, n
		}
	case strings.HasPrefix(tag, damagePrefix):
		if n, err := strconv.Atoi(strings.TrimPrefix(tag, damagePrefix)); err == nil {
			e.Kind, e.Amount = EffectDamage, n
		}
	case strings.HasPrefix(tag, transformPrefix):
		var attack, health int
		var into string
		if _, err := fmt.Sscanf(strings.TrimPrefix(tag, transformPrefix), "%d/%d%s", &attack, &health, &into); err == nil && into != "" {
			e.Kind = EffectTransform
			e.Attack, e.Health = attack, health
			e.Into = strings.ToUpper(into[:1]) + into[1:]
		}
	}
	return e
}

// Targeted reports whether the effect needs a target when cast.
func (e Effect) Targeted() bool {
	return e.Kind == EffectDamage || e.Kind == EffectTransform
}

func (e Effect) String() string {
	if e.Tag == "" {
		return "none"
	}
	return e.Tag
}
