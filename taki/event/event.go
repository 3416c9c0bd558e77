// Package event holds the notifications a match emits while resolving
// actions. Events are plain values returned to the caller of the submitting
// operation; the room screen is their single consumer.
package event

import (
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

// Event is implemented by every notification payload in this package.
type Event interface {
	event()
}

type MatchStarted struct {
	FirstCard card.Card
}

type TurnStarted struct {
	PlayerID   int64
	PlayerName string
}

type CardPlayed struct {
	PlayerID   int64
	PlayerName string
	Card       card.Card
}

type CardsDrawn struct {
	PlayerID   int64
	PlayerName string
	Cards      []card.Card
	FromChain  bool
}

type ColorChanged struct {
	PlayerID   int64
	PlayerName string
	Color      color.Color
}

// ChainUpdated reports the accumulated draw debt; Count is zero when a draw
// clears the chain.
type ChainUpdated struct {
	Count int
}

type SequenceOpened struct {
	PlayerID   int64
	PlayerName string
	Color      color.Color
}

type SequenceClosed struct {
	PlayerID   int64
	PlayerName string
	FinalCard  card.Card
}

type DirectionReversed struct {
	Direction int
}

type TurnSkipped struct {
	PlayerID   int64
	PlayerName string
}

// DeckReshuffled reports that the discard pile, top card excluded, was
// shuffled back into the draw pile.
type DeckReshuffled struct {
	Count int
}

type GameOver struct {
	WinnerID   int64
	WinnerName string
}

func (MatchStarted) event()      {}
func (TurnStarted) event()       {}
func (CardPlayed) event()        {}
func (CardsDrawn) event()        {}
func (ColorChanged) event()      {}
func (ChainUpdated) event()      {}
func (SequenceOpened) event()    {}
func (SequenceClosed) event()    {}
func (DirectionReversed) event() {}
func (TurnSkipped) event()       {}
func (DeckReshuffled) event()    {}
func (GameOver) event()          {}
