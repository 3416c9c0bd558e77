package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

func TestHandTracksCardInstances(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())

	firstTwin := card.Card{ID: 1, Color: color.Red, Kind: card.Number(4)}
	secondTwin := card.Card{ID: 2, Color: color.Red, Kind: card.Number(4)}
	hand.AddCards([]card.Card{firstTwin, secondTwin})
	require.Equal(t, 2, hand.Size())

	// twins resolve by instance, not by face
	found, ok := hand.Find(card.Card{ID: 2})
	require.True(t, ok)
	require.Equal(t, secondTwin, found)
	_, ok = hand.Find(card.Card{ID: 3})
	require.False(t, ok)

	require.True(t, hand.Remove(firstTwin))
	require.False(t, hand.Remove(firstTwin))
	require.Equal(t, []card.Card{secondTwin}, hand.Cards())
	require.False(t, hand.Empty())
}

func TestHandCardsReturnsACopy(t *testing.T) {
	held := card.Card{ID: 1, Color: color.Green, Kind: card.Taki}
	hand := game.NewHand()
	hand.AddCards([]card.Card{held})

	cards := hand.Cards()
	cards[0] = card.Card{ID: 77}
	require.Equal(t, []card.Card{held}, hand.Cards())
}
