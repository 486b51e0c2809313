package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hearth/card"
)

func TestSequence(t *testing.T) {
	raptor := instance(t, "Bloodfen Raptor", Player1, 1)
	fireball := instance(t, "Fireball", Player1, 2)
	root := NewWorld(1, Side{Health: 14, Mana: 10, Inhands: []card.Card{raptor, fireball}}, Side{Health: 14})
	play := MinionPlay{Player: Player1, Card: raptor}
	cast := SpellPlay{Player: Player1, Card: fireball, Target: HeroTarget(Player2)}

	t.Run("a new sequence holds only the null action", func(t *testing.T) {
		s := NewSequence(root)
		require.Equal(t, 1, s.Len())
		require.Empty(t, s.Actions())
		require.Equal(t, Null{}, s.First())
		require.True(t, s.All(MinionPlayKind), "An empty sequence satisfies any all-predicate")
		require.True(t, s.No(MinionPlayKind, SpellPlayKind))
		require.True(t, s.Last(NullKind))
	})

	t.Run("update and pop", func(t *testing.T) {
		s := NewSequence(root)
		afterPlay := root.Play(play)
		s.Update(play, afterPlay)
		afterCast := afterPlay.Play(cast)
		s.Update(cast, afterCast)

		require.Equal(t, 3, s.Len())
		require.Equal(t, afterCast, s.World())
		require.Equal(t, play, s.First())
		require.True(t, s.Last(SpellPlayKind))
		require.Equal(t, cast, s.Latest())
		require.False(t, s.All(MinionPlayKind))
		require.False(t, s.No(SpellPlayKind, HeroPowerKind))
		require.True(t, s.No(MinionAttackKind, HeroPowerKind))

		s.Pop(afterPlay)
		require.Equal(t, 2, s.Len())
		require.Same(t, afterPlay, s.World(), "Pop should rewind to the supplied world")
		require.True(t, s.All(MinionPlayKind))
		require.Equal(t, "Null,MinionPlay(Bloodfen Raptor(3/2))", s.String())

		s.Pop(root)
		require.Panics(t, func() { s.Pop(root) }, "The null action cannot be popped")
	})

	t.Run("copies are independent", func(t *testing.T) {
		s := NewSequence(root)
		s.Update(play, root.Play(play))
		c := s.Copy()

		s.Update(cast, s.World().Play(cast))
		c.World().side(Player2).Health = 1

		require.Equal(t, 2, c.Len())
		require.Equal(t, 8, s.World().Health(Player2))
	})
}

func TestCollection(t *testing.T) {
	raptor := instance(t, "Bloodfen Raptor", Player1, 1)
	root := NewWorld(1, Side{Health: 14, Mana: 10, Inhands: []card.Card{raptor}}, Side{Health: 14})
	play := MinionPlay{Player: Player1, Card: raptor}

	c := NewCollection(Player1)
	s := NewSequence(root)
	c.Add(s)
	next := root.Play(play)
	s.Update(play, next)
	c.Add(s)
	s.Pop(root)
	next.side(Player1).Mana = 99

	require.Equal(t, Player1, c.Player())
	require.Equal(t, 2, c.Len())
	require.Equal(t, 1, c.At(0).Len(), "Stored sequences should not follow later updates")
	require.Equal(t, 2, c.At(1).Len(), "Stored sequences should not follow later pops")
	require.Equal(t, 8, c.At(1).World().Mana(Player1), "Stored worlds should not follow later mutation")
	require.Len(t, c.Sequences(), 2)
	require.Contains(t, c.String(), "Choice 1: Null,MinionPlay")
}
