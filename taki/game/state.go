package game

import (
	"fmt"
	"strings"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
)

// State is a read-only snapshot of the public table state. Hands stay
// private; only their sizes are exposed.
type State struct {
	Phase            Phase
	ActivePlayer     int64
	ActiveColor      color.Color
	TopCard          card.Card
	ChainCount       int
	Sequence         *Sequence
	Direction        int
	DeckSize         int
	PileSize         int
	Winner           int64
	PlayerSequence   []int64
	PlayerNames      map[int64]string
	PlayerHandCounts map[int64]int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Top card: %s, active color: %s", s.TopCard, s.ActiveColor))

	if s.ChainCount > 0 {
		lines = append(lines, fmt.Sprintf("Pending draw chain: %d card(s)", s.ChainCount))
	}
	if s.Sequence != nil {
		lines = append(lines, fmt.Sprintf("Open taki of %s by %s", s.Sequence.Color, s.PlayerNames[s.Sequence.Player]))
	}

	var playerStatuses []string
	for _, playerID := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", s.PlayerNames[playerID], s.PlayerHandCounts[playerID])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	return strings.Join(lines, "\n")
}
