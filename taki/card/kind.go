package card

import "strconv"

// Kind is the closed set of card kinds. Number kinds take their face value
// (1-9); the named specials follow above the number range.
type Kind int

const (
	Stop Kind = iota + 10
	Plus
	PlusTwo
	ChangeDirection
	Taki
	ChangeColor
	SuperTaki
)

const (
	MinNumber = 1
	MaxNumber = 9
)

// Number returns the kind of a number card with the given face value.
func Number(value int) Kind {
	return Kind(value)
}

func (k Kind) IsNumber() bool {
	return k >= MinNumber && k <= MaxNumber
}

func (k Kind) IsSpecial() bool {
	return k >= Stop && k <= SuperTaki
}

// IsWild reports whether the kind carries no color of its own.
func (k Kind) IsWild() bool {
	return k == ChangeColor || k == SuperTaki
}

// Value returns the face value of a number kind, and 0 for specials.
func (k Kind) Value() int {
	if !k.IsNumber() {
		return 0
	}
	return int(k)
}

func (k Kind) String() string {
	switch {
	case k.IsNumber():
		return strconv.Itoa(int(k))
	case k == Stop:
		return "Stop"
	case k == Plus:
		return "Plus"
	case k == PlusTwo:
		return "PlusTwo"
	case k == ChangeDirection:
		return "ChangeDirection"
	case k == Taki:
		return "Taki"
	case k == ChangeColor:
		return "ChangeColor"
	case k == SuperTaki:
		return "SuperTaki"
	}
	return "Unknown"
}
