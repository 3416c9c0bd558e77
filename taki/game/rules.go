package game

import (
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

// Sequence is an open Taki run: its owner keeps playing cards of the
// sequence color until the run is closed.
type Sequence struct {
	Player int64
	Color  color.Color
}

// Playable reports whether the candidate may be played on the given table
// state. A pending draw chain admits PlusTwo only; an open sequence admits
// cards of the sequence color and further Taki/SuperTaki cards; otherwise a
// card is playable when its color matches the active color, its kind matches
// the top card's kind, or it is wild.
func Playable(candidate card.Card, top card.Card, activeColor color.Color, chainCount int, sequence *Sequence) bool {
	if chainCount > 0 {
		return candidate.Kind == card.PlusTwo
	}
	if sequence != nil {
		return candidate.Color == sequence.Color || candidate.Kind == card.Taki || candidate.Kind == card.SuperTaki
	}
	if candidate.Kind.IsWild() {
		return true
	}
	return candidate.Color == activeColor || candidate.Kind == top.Kind
}

// LegalPlays filters a hand down to the cards Playable admits.
func LegalPlays(hand []card.Card, top card.Card, activeColor color.Color, chainCount int, sequence *Sequence) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range hand {
		if Playable(candidateCard, top, activeColor, chainCount, sequence) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
