package game

import (
	"math/rand"

	"github.com/taki-online/server/taki/card"
)

// Deck is the draw pile. It never invents cards: once empty it stays empty
// until Refill returns discarded cards to it.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

func NewDeck(catalog []card.Card, rng *rand.Rand) *Deck {
	deck := &Deck{
		cards: make([]card.Card, len(catalog)),
		rng:   rng,
	}
	copy(deck.cards, catalog)
	deck.shuffle()
	return deck
}

func (d *Deck) DrawOne() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	drawn := d.cards[0]
	d.cards = d.cards[1:]
	return drawn, nil
}

func (d *Deck) Refill(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	d.shuffle()
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
