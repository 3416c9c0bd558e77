// Package ui renders table activity into strings for the serving layer to
// write to connections. Nothing here prints or sleeps.
package ui

import (
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s%s",
		color.Red.Paint("T"),
		color.Yellow.Paint("A"),
		color.Green.Paint("K"),
		color.Blue.Paint("I"),
	)
}

func (m MessageWriter) FirstCardFlipped(flipped card.Card) string {
	return Sprintfln("First card is %s", flipped)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("It's %s's turn!", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played card.Card) string {
	return Sprintfln("%s played %s!", playerName, played)
}

func (m MessageWriter) PlayerDrewCards(playerName string, count int) string {
	if count == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, count)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) PlayerPickedColor(playerName string, picked color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, picked)
}

func (m MessageWriter) ChainRaised(count int) string {
	return Sprintfln("Draw chain rises to %d cards!", count)
}

func (m MessageWriter) PlayerOpenedTaki(playerName string, takiColor color.Color) string {
	return Sprintfln("%s opened a %s taki!", playerName, takiColor)
}

func (m MessageWriter) PlayerClosedTaki(playerName string, finalCard card.Card) string {
	return Sprintfln("%s closed the taki on %s!", playerName, finalCard)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) DeckReshuffled(count int) string {
	return Sprintfln("Reshuffled %d discards back into the deck!", count)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) MatchAborted() string {
	return Sprintln("No cards left to draw, match over!")
}

func (m MessageWriter) YourHand(hand []card.Card) string {
	return Sprintfln("Your hand is %s", hand)
}

func (m MessageWriter) ActionHint(sequenceOpen bool) string {
	if sequenceOpen {
		return Sprintln("Enter 'draw' to draw, or 'end' to close your taki")
	}
	return Sprintln("Enter 'draw' to draw a card")
}

func (m MessageWriter) ColorPrompt() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}
