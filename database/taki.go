package database

import (
	"fmt"

	"github.com/ratel-online/core/util/arrays"
	"github.com/taki-online/server/taki/bot"
	"github.com/taki-online/server/taki/event"
	"github.com/taki-online/server/taki/game"
)

// TakiGame ties a running match to its room: the engine itself, the human
// seats with their turn-signal channels, and a policy per robot seat.
type TakiGame struct {
	Room        *Room                 `json:"room"`
	Players     []int64               `json:"players"`
	States      map[int64]chan int    `json:"states"`
	Game        *game.Game            `json:"game"`
	Robots      map[int64]*bot.Policy `json:"robots"`
	StartEvents []event.Event         `json:"startEvents"`
}

func (tg *TakiGame) HavePlay(player *Player) bool {
	if player == nil || !player.online || player.RoomID != tg.Room.ID {
		return false
	}
	return arrays.IndexOf(tg.Players, player.ID) >= 0
}

func (tg *TakiGame) NeedExit() bool {
	return tg.Room.Players <= 1 && tg.Room.Robots == 0
}

func (tg *TakiGame) delete() {
	if tg != nil {
		for _, state := range tg.States {
			close(state)
		}
	}
}

type TakiSeat struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewTakiSeat(p *Player) game.Player {
	return &TakiSeat{
		ID:   p.ID,
		Name: p.Name,
	}
}

// NewRobotSeat numbers robots from one; their negative IDs keep them apart
// from any authenticated player.
func NewRobotSeat(n int) game.Player {
	return &TakiSeat{
		ID:   int64(-n),
		Name: fmt.Sprintf("Robot-%d", n),
	}
}

func (ts *TakiSeat) PlayerID() int64 {
	return ts.ID
}

func (ts *TakiSeat) NickName() string {
	return ts.Name
}
