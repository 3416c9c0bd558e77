package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/ui"
)

func TestCardMenuLabelsInOrder(t *testing.T) {
	first := card.Card{ID: 1, Color: color.Red, Kind: card.Number(5)}
	second := card.Card{ID: 2, Color: color.Blue, Kind: card.Taki}
	menu := ui.NewCardMenu([]card.Card{first, second})
	require.False(t, menu.Empty())

	rendered := menu.Render()
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "enter A")
	require.Contains(t, lines[2], "enter B")

	selected, found := menu.Select("a")
	require.True(t, found)
	require.Equal(t, first, selected)
	selected, found = menu.Select(" B ")
	require.True(t, found)
	require.Equal(t, second, selected)
	_, found = menu.Select("z")
	require.False(t, found)
}

func TestEmptyCardMenu(t *testing.T) {
	menu := ui.NewCardMenu(nil)
	require.True(t, menu.Empty())
	_, found := menu.Select("A")
	require.False(t, found)
}
