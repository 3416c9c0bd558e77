package database

import (
	"fmt"
	"sort"
	stringx "strings"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/strings"
	"github.com/taki-online/server/consts"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				e.Value().(*Room).Cancel()
			})
		}
	})
}

func Connected(conn *network.Conn, info *model.AuthInfo) *Player {
	player := getPlayer(info.ID)
	if player == nil {
		player = &Player{
			ID:    info.ID,
			Name:  info.Name,
			Score: info.Score,
		}
		players.Set(player.ID, player)
	}
	player.Conn(conn)
	return player
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func CreateRoom(creator int64) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		Type:       consts.GameTypeTaki,
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
		MaxPlayers: consts.MaxPlayers,
		EnableChat: true,
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players+room.Robots >= room.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playersIds := getRoomPlayers(roomId)
	if playersIds != nil {
		playersIds[playerId] = true
		room.Players++
		player.RoomID = roomId
	}
	return nil
}

func LeaveRoom(roomId, playerId int64) {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		room.removePlayer(getPlayer(playerId))
	}
}

func RoomPlayers(roomId int64) map[int64]bool {
	return getRoomPlayers(roomId)
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return nil
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room != nil {
		room.broadcast(msg, exclude...)
	}
}

func BroadcastChat(player *Player, msg string, exclude ...int64) {
	room := getRoom(player.RoomID)
	if room == nil {
		return
	}
	if !room.EnableChat {
		_ = player.WriteError(consts.ErrorsChatUnopened)
		return
	}
	log.Infof("chat msg, player %s say: %s\n", player, stringx.TrimSpace(msg))
	room.broadcast(strings.Desensitize(msg), exclude...)
}

func SetRoomProps(room *Room, key, value string) {
	switch key {
	case consts.RoomPropsPassword:
		if value == "off" {
			room.Password = ""
		} else {
			room.Password = value
		}
	case consts.RoomPropsChat:
		room.EnableChat = value == "on"
	default:
		return
	}
	room.broadcast(fmt.Sprintf("room props changed, %s: %s\n", key, value))
}
