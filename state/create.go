package state

import (
	"bytes"
	"fmt"

	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
)

type create struct{}

func (*create) Next(player *database.Player) (consts.StateID, error) {
	robots, err := askForRobots(player)
	if err != nil {
		return 0, err
	}
	// 创建房间
	room := database.CreateRoom(player.ID)
	room.Robots = robots
	err = player.WriteString(fmt.Sprintf("Create room successful, id : %d\n", room.ID))
	if err != nil {
		return 0, player.WriteError(err)
	}
	err = database.JoinRoom(room.ID, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateWaiting, nil
}

func (*create) Exit(_ *database.Player) consts.StateID {
	return consts.StateHome
}

// 询问机器人数量
func askForRobots(player *database.Player) (robots int, err error) {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Please input robot count (0-%d)\n", consts.MaxRobots))
	err = player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	robots, err = player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	// 机器人数量输入非法
	if robots < 0 || robots > consts.MaxRobots {
		_ = player.WriteError(consts.ErrorsInputInvalid)
		return 0, consts.ErrorsInputInvalid
	}
	return
}
