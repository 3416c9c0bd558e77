package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/game"
)

func TestDeckSeededShuffleIsDeterministic(t *testing.T) {
	catalog := card.NewStandardCatalog()
	first := game.NewDeck(catalog, rand.New(rand.NewSource(11)))
	second := game.NewDeck(catalog, rand.New(rand.NewSource(11)))

	for index := 0; index < len(catalog); index++ {
		firstCard, err := first.DrawOne()
		require.NoError(t, err)
		secondCard, err := second.DrawOne()
		require.NoError(t, err)
		require.Equal(t, firstCard, secondCard)
	}
}

func TestDeckNeverInventsCards(t *testing.T) {
	catalog := card.NewStandardCatalog()
	deck := game.NewDeck(catalog, rand.New(rand.NewSource(3)))
	require.Equal(t, len(catalog), deck.Size())

	var drawn []card.Card
	for {
		next, err := deck.DrawOne()
		if err != nil {
			require.Equal(t, game.ErrEmptyDeck, err)
			break
		}
		drawn = append(drawn, next)
	}
	require.ElementsMatch(t, catalog, drawn)
	require.Equal(t, 0, deck.Size())

	// an empty deck stays empty until cards come back
	_, err := deck.DrawOne()
	require.Equal(t, game.ErrEmptyDeck, err)
	deck.Refill(drawn[:10])
	require.Equal(t, 10, deck.Size())
}
