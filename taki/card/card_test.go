package card_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

func TestKindPredicates(t *testing.T) {
	scenarios := []struct {
		description string
		kind        card.Kind
		isNumber    bool
		isWild      bool
	}{
		{description: "lowest_number", kind: card.Number(1), isNumber: true},
		{description: "highest_number", kind: card.Number(9), isNumber: true},
		{description: "stop", kind: card.Stop},
		{description: "plus", kind: card.Plus},
		{description: "plus_two", kind: card.PlusTwo},
		{description: "change_direction", kind: card.ChangeDirection},
		{description: "taki", kind: card.Taki},
		{description: "change_color", kind: card.ChangeColor, isWild: true},
		{description: "super_taki", kind: card.SuperTaki, isWild: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.isNumber, scenario.kind.IsNumber())
			require.Equal(t, !scenario.isNumber, scenario.kind.IsSpecial())
			require.Equal(t, scenario.isWild, scenario.kind.IsWild())
		})
	}
}

func TestNumberValue(t *testing.T) {
	require.Equal(t, 7, card.Number(7).Value())
	require.Equal(t, 0, card.Taki.Value())
}

func TestCardEqual(t *testing.T) {
	first := card.Card{ID: 1, Color: color.Green, Kind: card.Number(8)}
	twin := card.Card{ID: 2, Color: color.Green, Kind: card.Number(8)}
	other := card.Card{ID: 3, Color: color.Red, Kind: card.Number(8)}

	require.True(t, first.Equal(twin))
	require.False(t, first.Same(twin))
	require.True(t, first.Same(card.Card{ID: 1}))
	require.False(t, first.Equal(other))
}

func TestNewStandardCatalog(t *testing.T) {
	catalog := card.NewStandardCatalog()
	require.Len(t, catalog, 118)

	t.Run("instance_ids_are_unique", func(t *testing.T) {
		seen := make(map[int]bool, len(catalog))
		for _, c := range catalog {
			require.False(t, seen[c.ID], "duplicate id %d", c.ID)
			seen[c.ID] = true
		}
	})

	t.Run("wild_cards_carry_the_wild_color_only", func(t *testing.T) {
		for _, c := range catalog {
			require.Equal(t, c.Kind.IsWild(), c.Color == color.Wild, "card %s", c)
		}
	})

	t.Run("counts_per_color_and_kind", func(t *testing.T) {
		type face struct {
			color color.Color
			kind  card.Kind
		}
		counts := make(map[face]int)
		for _, c := range catalog {
			counts[face{c.Color, c.Kind}]++
		}
		for _, cardColor := range color.Standard() {
			for value := card.MinNumber; value <= card.MaxNumber; value++ {
				require.Equal(t, 2, counts[face{cardColor, card.Number(value)}])
			}
			for _, kind := range []card.Kind{card.Stop, card.Plus, card.PlusTwo, card.ChangeDirection, card.Taki} {
				require.Equal(t, 2, counts[face{cardColor, kind}])
			}
		}
		require.Equal(t, 4, counts[face{color.Wild, card.ChangeColor}])
		require.Equal(t, 2, counts[face{color.Wild, card.SuperTaki}])
	})
}
