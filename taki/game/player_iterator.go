package game

type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) ID() int64 {
	return c.player.PlayerID()
}

func (c *playerController) Name() string {
	return c.player.NickName()
}

type PlayerIterator struct {
	players map[int64]*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	var playerIDs []int64
	playerMap := make(map[int64]*playerController, len(players))
	for _, player := range players {
		playerID := player.PlayerID()
		playerIDs = append(playerIDs, playerID)
		playerMap[playerID] = newPlayerController(player)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(playerIDs),
	}
}

func (i *PlayerIterator) Controller(playerID int64) *playerController {
	return i.players[playerID]
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(playerID int64) {
		function(i.players[playerID])
	})
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) Size() int {
	return i.cycler.Size()
}
