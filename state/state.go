package state

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
	"github.com/taki-online/server/state/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateTakiGame, &game.Taki{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Run walks a player through the screens until the connection dies or the
// player exits at the root. Exit-flagged errors unwind through the current
// screen's Exit; recoverable ones replay the screen.
func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			v, ok := err.(consts.Error)
			if !ok {
				log.Error(err)
				return
			}
			if v.Exit {
				stateId = state.Exit(player)
				if stateId == 0 {
					return
				}
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isExit(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	signal = strings.ToLower(signal)
	return signal == "ls" || signal == "v"
}
