package card

import (
	"github.com/taki-online/server/taki/card/color"
)

// Card is an immutable physical card. ID distinguishes instances of equal
// color and kind, so a hand holding both copies of a card stays countable.
type Card struct {
	ID    int
	Color color.Color
	Kind  Kind
}

// Equal compares face value only, ignoring instance identity.
func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Kind == other.Kind
}

// Same reports whether both values name the same physical card.
func (c Card) Same(other Card) bool {
	return c.ID == other.ID
}

func (c Card) String() string {
	return c.Color.Paint(c.Kind.String())
}
