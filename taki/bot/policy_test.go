package bot_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/bot"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

func newPolicy(seed int64, config bot.Config) *bot.Policy {
	return bot.New(config, rand.New(rand.NewSource(seed)))
}

// instantConfig removes the think delay so card picks are the only use of
// the random source.
func instantConfig(preference float64) bot.Config {
	config := bot.DefaultConfig()
	config.SpecialPreference = preference
	config.ThinkMin = 0
	config.ThinkMax = 0
	return config
}

func actionState() game.State {
	return game.State{
		Phase:       game.PhaseAwaitingAction,
		TopCard:     card.Card{ID: 90, Color: color.Red, Kind: card.Number(5)},
		ActiveColor: color.Red,
	}
}

func TestDecideDrawsWithoutALegalPlay(t *testing.T) {
	hand := []card.Card{
		{ID: 1, Color: color.Blue, Kind: card.Number(7)},
		{ID: 2, Color: color.Green, Kind: card.Taki},
	}
	for seed := int64(0); seed < 10; seed++ {
		decision := newPolicy(seed, instantConfig(0.7)).Decide(actionState(), hand)
		require.Equal(t, bot.ActionDraw, decision.Type)
	}
}

func TestSpecialPreferenceSplitsThePick(t *testing.T) {
	number := card.Card{ID: 1, Color: color.Red, Kind: card.Number(9)}
	special := card.Card{ID: 2, Color: color.Red, Kind: card.Stop}
	hand := []card.Card{number, special}

	for seed := int64(0); seed < 10; seed++ {
		// preference 1 always reaches for the special
		decision := newPolicy(seed, instantConfig(1)).Decide(actionState(), hand)
		require.Equal(t, bot.ActionPlay, decision.Type)
		require.Equal(t, special, decision.Card)

		// preference 0 never does
		decision = newPolicy(seed, instantConfig(0)).Decide(actionState(), hand)
		require.Equal(t, bot.ActionPlay, decision.Type)
		require.Equal(t, number, decision.Card)
	}
}

func TestSpecialPriorityOrder(t *testing.T) {
	scenarios := []struct {
		description string
		kinds       []card.Kind
		expected    card.Kind
	}{
		{description: "taki_beats_plus_two", kinds: []card.Kind{card.PlusTwo, card.Taki}, expected: card.Taki},
		{description: "super_taki_shares_the_top_tier", kinds: []card.Kind{card.Stop, card.PlusTwo, card.SuperTaki}, expected: card.SuperTaki},
		{description: "plus_two_beats_stop", kinds: []card.Kind{card.Stop, card.PlusTwo}, expected: card.PlusTwo},
		{description: "stop_beats_plus", kinds: []card.Kind{card.Plus, card.Stop}, expected: card.Stop},
		{description: "plus_beats_change_direction", kinds: []card.Kind{card.ChangeDirection, card.Plus}, expected: card.Plus},
		{description: "change_color_comes_last", kinds: []card.Kind{card.ChangeColor, card.ChangeDirection}, expected: card.ChangeDirection},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			var hand []card.Card
			for index, kind := range scenario.kinds {
				cardColor := color.Red
				if kind.IsWild() {
					cardColor = color.Wild
				}
				hand = append(hand, card.Card{ID: index + 1, Color: cardColor, Kind: kind})
			}
			for seed := int64(0); seed < 10; seed++ {
				decision := newPolicy(seed, instantConfig(1)).Decide(actionState(), hand)
				require.Equal(t, bot.ActionPlay, decision.Type)
				require.Equal(t, scenario.expected, decision.Card.Kind)
			}
		})
	}
}

func TestNumbersComeFromTheTopHalf(t *testing.T) {
	hand := []card.Card{
		{ID: 1, Color: color.Red, Kind: card.Number(3)},
		{ID: 2, Color: color.Red, Kind: card.Number(9)},
		{ID: 3, Color: color.Red, Kind: card.Number(5)},
		{ID: 4, Color: color.Red, Kind: card.Number(7)},
	}
	for seed := int64(0); seed < 30; seed++ {
		decision := newPolicy(seed, instantConfig(0)).Decide(actionState(), hand)
		require.Equal(t, bot.ActionPlay, decision.Type)
		require.GreaterOrEqual(t, decision.Card.Kind.Value(), 7)
	}
}

func TestSingleLegalNumberIsForced(t *testing.T) {
	only := card.Card{ID: 1, Color: color.Red, Kind: card.Number(2)}
	hand := []card.Card{only, {ID: 2, Color: color.Blue, Kind: card.Number(8)}}
	for seed := int64(0); seed < 10; seed++ {
		decision := newPolicy(seed, instantConfig(0.7)).Decide(actionState(), hand)
		require.Equal(t, bot.ActionPlay, decision.Type)
		require.Equal(t, only, decision.Card)
	}
}

func TestPendingChainForcesThePlusTwo(t *testing.T) {
	state := game.State{
		Phase:       game.PhaseAwaitingAction,
		TopCard:     card.Card{ID: 90, Color: color.Blue, Kind: card.PlusTwo},
		ActiveColor: color.Blue,
		ChainCount:  2,
	}
	hand := []card.Card{
		{ID: 1, Color: color.Red, Kind: card.PlusTwo},
		{ID: 2, Color: color.Blue, Kind: card.Number(5)},
	}
	for seed := int64(0); seed < 10; seed++ {
		// even a number-only preference falls back to the lone legal special
		decision := newPolicy(seed, instantConfig(0)).Decide(state, hand)
		require.Equal(t, bot.ActionPlay, decision.Type)
		require.Equal(t, card.PlusTwo, decision.Card.Kind)
	}
}

func TestOpenRunContinuationAndClose(t *testing.T) {
	state := game.State{
		Phase:       game.PhaseAwaitingAction,
		TopCard:     card.Card{ID: 90, Color: color.Green, Kind: card.Taki},
		ActiveColor: color.Green,
		Sequence:    &game.Sequence{Player: 7, Color: color.Green},
	}

	continuation := card.Card{ID: 1, Color: color.Green, Kind: card.Number(4)}
	decision := newPolicy(3, instantConfig(0.7)).Decide(state, []card.Card{continuation, {ID: 2, Color: color.Red, Kind: card.Number(9)}})
	require.Equal(t, bot.ActionPlay, decision.Type)
	require.Equal(t, continuation, decision.Card)

	// nothing to continue with: the policy hands back a draw
	decision = newPolicy(3, instantConfig(0.7)).Decide(state, []card.Card{{ID: 2, Color: color.Red, Kind: card.Number(9)}})
	require.Equal(t, bot.ActionDraw, decision.Type)
}

func TestColorChoiceTakesTheMostFrequent(t *testing.T) {
	state := game.State{Phase: game.PhaseAwaitingColorChoice}
	hand := []card.Card{
		{ID: 1, Color: color.Green, Kind: card.Number(1)},
		{ID: 2, Color: color.Green, Kind: card.Number(2)},
		{ID: 3, Color: color.Red, Kind: card.Number(3)},
		{ID: 4, Color: color.Wild, Kind: card.ChangeColor},
	}
	for seed := int64(0); seed < 20; seed++ {
		decision := newPolicy(seed, instantConfig(0.7)).Decide(state, hand)
		require.Equal(t, bot.ActionChooseColor, decision.Type)
		require.Equal(t, color.Green, decision.Color)
	}
}

func TestColorChoiceBreaksTiesAmongTheTied(t *testing.T) {
	state := game.State{Phase: game.PhaseAwaitingColorChoice}
	hand := []card.Card{
		{ID: 1, Color: color.Green, Kind: card.Number(1)},
		{ID: 2, Color: color.Red, Kind: card.Number(2)},
	}
	for seed := int64(0); seed < 20; seed++ {
		decision := newPolicy(seed, instantConfig(0.7)).Decide(state, hand)
		require.Contains(t, []color.Color{color.Red, color.Green}, decision.Color)
	}
}

func TestColorChoiceWithNoColoredCards(t *testing.T) {
	state := game.State{Phase: game.PhaseAwaitingColorChoice}
	hand := []card.Card{
		{ID: 1, Color: color.Wild, Kind: card.ChangeColor},
		{ID: 2, Color: color.Wild, Kind: card.SuperTaki},
	}
	for seed := int64(0); seed < 20; seed++ {
		decision := newPolicy(seed, instantConfig(0.7)).Decide(state, hand)
		require.True(t, decision.Color.IsStandard())
	}

	decision := newPolicy(1, instantConfig(0.7)).Decide(state, nil)
	require.True(t, decision.Color.IsStandard())
}

func TestDecideIsDeterministicForAFixedSeed(t *testing.T) {
	state := actionState()
	hand := []card.Card{
		{ID: 1, Color: color.Red, Kind: card.Number(9)},
		{ID: 2, Color: color.Red, Kind: card.Stop},
		{ID: 3, Color: color.Wild, Kind: card.ChangeColor},
	}
	first := newPolicy(99, bot.DefaultConfig())
	second := newPolicy(99, bot.DefaultConfig())
	for step := 0; step < 10; step++ {
		require.Equal(t, first.Decide(state, hand), second.Decide(state, hand))
	}
}

func TestDelayStaysWithinTheConfiguredBounds(t *testing.T) {
	config := bot.DefaultConfig()
	policy := bot.New(config, rand.New(rand.NewSource(4)))
	for step := 0; step < 50; step++ {
		decision := policy.Decide(actionState(), nil)
		require.GreaterOrEqual(t, decision.Delay, config.ThinkMin)
		require.Less(t, decision.Delay, config.ThinkMax)
	}

	decision := newPolicy(1, instantConfig(0.5)).Decide(actionState(), nil)
	require.Equal(t, time.Duration(0), decision.Delay)
}
