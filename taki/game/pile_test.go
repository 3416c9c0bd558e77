package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

func TestPileTopAndTakeAllButTop(t *testing.T) {
	pile := game.NewPile()
	require.Equal(t, card.Card{}, pile.Top())
	require.Nil(t, pile.TakeAllButTop())

	first := card.Card{ID: 1, Color: color.Red, Kind: card.Number(1)}
	second := card.Card{ID: 2, Color: color.Blue, Kind: card.Number(2)}
	third := card.Card{ID: 3, Color: color.Green, Kind: card.Number(3)}
	pile.Add(first)
	pile.Add(second)
	pile.Add(third)
	require.Equal(t, third, pile.Top())
	require.Equal(t, 3, pile.Size())

	taken := pile.TakeAllButTop()
	require.Equal(t, []card.Card{first, second}, taken)
	require.Equal(t, 1, pile.Size())
	require.Equal(t, third, pile.Top())

	// with only the top left there is nothing to take
	require.Nil(t, pile.TakeAllButTop())
}

func TestPileCardsReturnsACopy(t *testing.T) {
	played := card.Card{ID: 1, Color: color.Red, Kind: card.Number(1)}
	pile := game.NewPile()
	pile.Add(played)

	cards := pile.Cards()
	cards[0] = card.Card{ID: 9}
	require.Equal(t, played, pile.Top())
}
