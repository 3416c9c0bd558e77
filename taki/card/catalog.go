package card

import (
	"github.com/taki-online/server/taki/card/color"
)

// NewStandardCatalog builds the full card set with sequential instance IDs:
// per color two of each number 1-9 and two of each colored special, plus
// four ChangeColor and two SuperTaki cards.
func NewStandardCatalog() []Card {
	cards := make([]Card, 0, 118)
	nextID := 1
	add := func(cardColor color.Color, kind Kind, copies int) {
		for i := 0; i < copies; i++ {
			cards = append(cards, Card{ID: nextID, Color: cardColor, Kind: kind})
			nextID++
		}
	}

	for _, cardColor := range color.Standard() {
		for value := MinNumber; value <= MaxNumber; value++ {
			add(cardColor, Number(value), 2)
		}
		add(cardColor, Stop, 2)
		add(cardColor, Plus, 2)
		add(cardColor, PlusTwo, 2)
		add(cardColor, ChangeDirection, 2)
		add(cardColor, Taki, 2)
	}
	add(color.Wild, ChangeColor, 4)
	add(color.Wild, SuperTaki, 2)

	return cards
}
