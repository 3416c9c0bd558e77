package game

// Player identifies a seat at the table. The match never calls back into a
// player; actions come in through the submit operations and everything
// observable leaves as events.
type Player interface {
	PlayerID() int64
	NickName() string
}
