package bot_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taki-online/server/taki/bot"
	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/game"
)

type robotSeat struct {
	id   int64
	name string
}

func (s robotSeat) PlayerID() int64  { return s.id }
func (s robotSeat) NickName() string { return s.name }

// Three policies drive a seeded match to its end, with card conservation
// checked after every single action.
func TestBotsPlayAFullMatch(t *testing.T) {
	catalog := card.NewStandardCatalog()
	seats := []game.Player{
		robotSeat{id: 1, name: "robot-1"},
		robotSeat{id: 2, name: "robot-2"},
		robotSeat{id: 3, name: "robot-3"},
	}
	g := game.New(seats, catalog, rand.New(rand.NewSource(42)))
	policies := map[int64]*bot.Policy{
		1: bot.New(instantConfig(0.7), rand.New(rand.NewSource(1))),
		2: bot.New(instantConfig(0.7), rand.New(rand.NewSource(2))),
		3: bot.New(instantConfig(0.7), rand.New(rand.NewSource(3))),
	}

	_, err := g.Start()
	require.NoError(t, err)

	conserve := func() {
		state := g.State()
		held := 0
		for _, count := range state.PlayerHandCounts {
			held += count
		}
		require.Equal(t, len(catalog), state.DeckSize+state.PileSize+held)
	}
	conserve()

	for step := 0; step < 5000; step++ {
		state := g.State()
		if state.Phase == game.PhaseGameOver {
			break
		}
		actor := state.ActivePlayer
		decision := policies[actor].Decide(state, g.Hand(actor))

		switch decision.Type {
		case bot.ActionPlay:
			_, err = g.SubmitPlay(actor, decision.Card)
		case bot.ActionDraw:
			// a draw verdict from the owner of an open run closes the run
			if state.Sequence != nil && state.Sequence.Player == actor {
				_, err = g.SubmitEndSequence(actor)
			} else {
				_, err = g.SubmitDraw(actor)
			}
		case bot.ActionChooseColor:
			_, err = g.SubmitColorChoice(actor, decision.Color)
		}
		require.NoError(t, err)
		conserve()
	}

	state := g.State()
	require.Equal(t, game.PhaseGameOver, state.Phase)
	require.NotZero(t, state.Winner)
	require.Empty(t, g.Hand(state.Winner))
}
