package ui

import (
	"fmt"
	"strings"

	"github.com/taki-online/server/taki/card"
)

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

// CardMenu labels a set of playable cards with selection runes, keeping the
// labeling order for rendering.
type CardMenu struct {
	labels  []string
	options map[string]card.Card
}

func NewCardMenu(cards []card.Card) *CardMenu {
	sequence := runeSequence{}
	menu := &CardMenu{options: make(map[string]card.Card, len(cards))}
	for _, menuCard := range cards {
		label := string(sequence.next())
		menu.labels = append(menu.labels, label)
		menu.options[label] = menuCard
	}
	return menu
}

func (m *CardMenu) Empty() bool {
	return len(m.labels) == 0
}

func (m *CardMenu) Render() string {
	lines := []string{"Select a card to play:"}
	for _, label := range m.labels {
		lines = append(lines, fmt.Sprintf("%s (enter %s)", m.options[label], label))
	}
	return strings.Join(lines, "\n")
}

// Select resolves a player's input to the labeled card, ignoring case and
// surrounding spaces.
func (m *CardMenu) Select(input string) (card.Card, bool) {
	selected, found := m.options[strings.ToUpper(strings.TrimSpace(input))]
	return selected, found
}
