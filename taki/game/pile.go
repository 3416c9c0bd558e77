package game

import (
	"github.com/taki-online/server/taki/card"
)

// Pile is the discard pile. The top card stays visible; everything beneath
// it may be taken back to refill the deck.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 64)}
}

func (p *Pile) Add(played card.Card) {
	p.cards = append(p.cards, played)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Top() card.Card {
	if len(p.cards) == 0 {
		return card.Card{}
	}
	return p.cards[len(p.cards)-1]
}

// TakeAllButTop removes and returns every card except the top one.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return taken
}

func (p *Pile) Size() int {
	return len(p.cards)
}
