package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hearth/card"
	"hearth/experiments/metrics"
	"hearth/game"
)

var library = card.NewLibrary()

func instance(t *testing.T, name string, owner game.PlayerID, n int) card.Card {
	t.Helper()
	c, ok := library.Instantiate(name, card.InstanceKey(uint8(owner), n))
	require.True(t, ok, "unknown card %q", name)
	return c
}

func replay(root *game.World, actions []game.Action) *game.World {
	w := root
	for _, a := range actions {
		w = w.Play(a)
	}
	return w
}

func TestSearch(t *testing.T) {
	t.Run("nothing to do yields only the empty sequence", func(t *testing.T) {
		root := game.NewWorld(1, game.Side{Health: 14}, game.Side{Health: 14})
		c, _ := New().Search(root, game.Player1)
		require.Equal(t, 1, c.Len())
		require.Empty(t, c.At(0).Actions())
		require.Equal(t, game.Player1, c.Player())
	})

	t.Run("sequences replay to their recorded worlds", func(t *testing.T) {
		root := game.NewWorld(3,
			game.Side{
				Health:    14,
				Mana:      6,
				HeroPower: card.Fireblast(),
				Inhands:   []card.Card{instance(t, "Bloodfen Raptor", game.Player1, 1), instance(t, "Fireball", game.Player1, 2)},
			},
			game.Side{Health: 14, Intable: []card.Card{instance(t, "River Crocolisk", game.Player2, 1)}},
		)
		before := root.Hash()
		c, m := New(WithMetrics()).Search(root, game.Player1)

		require.Equal(t, before, root.Hash(), "Search must not modify its argument")
		require.Greater(t, c.Len(), 1)
		require.Empty(t, c.At(0).Actions(), "The empty sequence comes first")
		require.Equal(t, c.Len(), m.Sequences)
		require.GreaterOrEqual(t, m.Nodes, m.Sequences)
		require.False(t, m.IsTruncated)

		hashes := map[uint64]bool{}
		for i, s := range c.Sequences() {
			h := s.World().Hash()
			require.False(t, hashes[h], "Sequence %d reaches a world seen before", i)
			hashes[h] = true
			require.Equal(t, h, replay(root, s.Actions()).Hash(), "Sequence %d: %v", i, s)
			require.GreaterOrEqual(t, s.World().Mana(game.Player1), 0)
		}
	})

	t.Run("a lethal action ends its branch", func(t *testing.T) {
		root := game.NewWorld(5,
			game.Side{Health: 14, Mana: 10, HeroPower: card.Fireblast(), Inhands: []card.Card{instance(t, "Fireball", game.Player1, 1)}},
			game.Side{Health: 6},
		)
		c, _ := New().Search(root, game.Player1)
		lethal := 0
		for _, s := range c.Sequences() {
			if loser, over := s.World().Loser(); over {
				require.Equal(t, game.Player2, loser)
				lethal++
				continue
			}
		}
		require.Equal(t, 2, lethal, "Fireball alone, or hero power then Fireball")
		for _, s := range c.Sequences() {
			actions := s.Actions()
			for i := 0; i < len(actions)-1; i++ {
				_, over := replay(root, actions[:i+1]).Loser()
				require.False(t, over, "Sequence %v continues past a decided world", s)
			}
		}
	})

	t.Run("consecutive minion plays are explored in name order", func(t *testing.T) {
		root := game.NewWorld(3,
			game.Side{Health: 14, Mana: 4, Inhands: []card.Card{
				instance(t, "River Crocolisk", game.Player1, 1),
				instance(t, "Bloodfen Raptor", game.Player1, 2),
			}},
			game.Side{Health: 14},
		)
		c, _ := New(WithDedupe(false)).Search(root, game.Player1)
		require.Equal(t, 4, c.Len(), "Empty, raptor, crocolisk, raptor then crocolisk")
		var last []game.Action
		for _, s := range c.Sequences() {
			if len(s.Actions()) == 2 {
				last = s.Actions()
			}
		}
		require.Len(t, last, 2)
		require.Equal(t, "Bloodfen Raptor", last[0].(game.MinionPlay).Card.Name)
		require.Equal(t, "River Crocolisk", last[1].(game.MinionPlay).Card.Name)
	})

	t.Run("bounds", func(t *testing.T) {
		root := game.NewWorld(9,
			game.Side{Health: 14, Mana: 10, HeroPower: card.Fireblast(), Intable: []card.Card{
				instance(t, "Chillwind Yeti", game.Player1, 1),
				instance(t, "Oasis Snapjaw", game.Player1, 2),
				instance(t, "Bloodfen Raptor", game.Player1, 3),
			}},
			game.Side{Health: 30, Intable: []card.Card{
				instance(t, "River Crocolisk", game.Player2, 1),
				instance(t, "Oasis Snapjaw", game.Player2, 2),
			}},
		)

		c, m := New(WithMaxDepth(1), WithMetrics()).Search(root, game.Player1)
		for _, s := range c.Sequences() {
			require.LessOrEqual(t, len(s.Actions()), 1)
		}
		require.True(t, m.IsTruncated, "Deeper sequences were cut off")
		require.Equal(t, 1, m.MaxDepth)

		c, m = New(WithMaxSequences(5), WithMetrics()).Search(root, game.Player1)
		require.Equal(t, 5, c.Len())
		require.True(t, m.IsTruncated)

		c, m = New(WithMaxSequences(-1)).Search(root, game.Player1)
		require.Greater(t, c.Len(), 5, "Non-positive bounds keep the default")
		require.Equal(t, metricsZero(), m, "Metrics are off by default")
	})
}

func metricsZero() metrics.SearchMetric {
	return metrics.SearchMetric{}
}
