package game

import (
	"github.com/taki-online/server/taki/card"
)

// Hand tracks the physical cards a player holds, keyed by instance ID so
// twin cards of equal face stay distinguishable.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 8)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Find resolves a card value to the held instance with the same ID.
func (h *Hand) Find(searched card.Card) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.Same(searched) {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) Remove(removed card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Same(removed) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
