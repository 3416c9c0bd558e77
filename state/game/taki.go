package game

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/taki-online/server/consts"
	"github.com/taki-online/server/database"
	"github.com/taki-online/server/taki/bot"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/event"
	"github.com/taki-online/server/taki/game"
	"github.com/taki-online/server/taki/ui"
)

// Turn-token signals passed between player screens. Exactly one statePlay
// token is in flight while a match runs; its holder resolves robot and
// absent turns before handing it to the next live player.
const (
	statePlay      = 1
	stateWaiting   = 2
	stateFirstCard = 3
)

type Taki struct{}

func (g *Taki) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	tk := room.Game
	if tk == nil {
		return consts.StateWaiting, nil
	}
	buf := bytes.Buffer{}
	buf.WriteString(ui.Message.Welcome())
	buf.WriteString(ui.Message.YourHand(tk.Game.Hand(player.ID)))
	_ = player.WriteString(buf.String())
	for {
		if room.State == consts.RoomStateWaiting {
			return consts.StateWaiting, nil
		}
		state := <-tk.States[player.ID]
		switch state {
		case stateFirstCard:
			renderEvents(room, tk, tk.StartEvents)
			tk.States[player.ID] <- statePlay
		case statePlay:
			err := handlePlayTaki(room, player, tk)
			if err != nil {
				log.Error(err)
				return 0, err
			}
		case stateWaiting:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
	}
}

func (g *Taki) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
		if isOwner {
			newOwner := database.GetPlayer(room.Creator)
			if newOwner != nil {
				database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func handlePlayTaki(room *database.Room, player *database.Player, tk *database.TakiGame) error {
	state := tk.Game.State()
	if state.Phase == game.PhaseGameOver {
		return finishTakiGame(room, tk, "")
	}
	if tk.NeedExit() {
		return finishTakiGame(room, tk, player.Name)
	}
	current := state.ActivePlayer
	if policy, ok := tk.Robots[current]; ok {
		if err := playRobot(room, tk, current, policy); err != nil {
			return finishTakiGame(room, tk, "")
		}
		tk.States[player.ID] <- statePlay
		return nil
	}
	if !tk.HavePlay(database.GetPlayer(current)) {
		if err := playAbsent(room, tk, current); err != nil {
			return finishTakiGame(room, tk, "")
		}
		tk.States[player.ID] <- statePlay
		return nil
	}
	if current != player.ID {
		tk.States[current] <- statePlay
		return nil
	}
	return playTurn(room, player, tk)
}

func playTurn(room *database.Room, player *database.Player, tk *database.TakiGame) error {
	state := tk.Game.State()
	buf := bytes.Buffer{}
	buf.WriteString(ui.Message.HumanPlayerTurnStarted(player.Name))
	buf.WriteString(state.String() + "\n")
	buf.WriteString(ui.Message.YourHand(tk.Game.Hand(player.ID)))
	_ = player.WriteString(buf.String())
	if state.Phase == game.PhaseAwaitingColorChoice {
		return askColor(room, player, tk)
	}
	return askAction(room, player, tk)
}

func askAction(room *database.Room, player *database.Player, tk *database.TakiGame) error {
	gameState := tk.Game.State()
	legal := tk.Game.LegalMoves(player.ID)
	menu := ui.NewCardMenu(legal)
	ownRun := gameState.Sequence != nil && gameState.Sequence.Player == player.ID
	buf := bytes.Buffer{}
	if !menu.Empty() {
		buf.WriteString(menu.Render())
	}
	buf.WriteString(ui.Message.ActionHint(ownRun))
	_ = player.WriteString(buf.String())
	for {
		input, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			if err != consts.ErrorsTimeout {
				return abandonTurn(room, player, tk, err)
			}
			// timeout plays the first offered card, or draws
			if len(legal) > 0 {
				result, submitErr := tk.Game.SubmitPlay(player.ID, legal[0])
				return afterAction(room, player, tk, result, submitErr)
			}
			result, submitErr := tk.Game.SubmitDraw(player.ID)
			return afterAction(room, player, tk, result, submitErr)
		}
		input = strings.TrimSpace(input)
		word := strings.ToLower(input)
		if word == "draw" {
			result, submitErr := tk.Game.SubmitDraw(player.ID)
			return afterAction(room, player, tk, result, submitErr)
		}
		if word == "end" {
			result, submitErr := tk.Game.SubmitEndSequence(player.ID)
			if submitErr == game.ErrWrongPhase || submitErr == game.ErrNotYourTurn {
				_ = player.WriteString("You have no open taki to close! \n")
				continue
			}
			return afterAction(room, player, tk, result, submitErr)
		}
		selected, found := menu.Select(input)
		if !found {
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, input))
			continue
		}
		result, submitErr := tk.Game.SubmitPlay(player.ID, selected)
		return afterAction(room, player, tk, result, submitErr)
	}
}

func askColor(room *database.Room, player *database.Player, tk *database.TakiGame) error {
	_ = player.WriteString(ui.Message.ColorPrompt())
	for {
		input, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			if err != consts.ErrorsTimeout {
				return abandonTurn(room, player, tk, err)
			}
			result, submitErr := tk.Game.SubmitColorChoice(player.ID, color.Red)
			return afterAction(room, player, tk, result, submitErr)
		}
		chosen, colorErr := color.ByName(strings.ToLower(strings.TrimSpace(input)))
		if colorErr != nil {
			_ = player.WriteString(fmt.Sprintf("Unknown color '%s' \n", input))
			continue
		}
		result, submitErr := tk.Game.SubmitColorChoice(player.ID, chosen)
		return afterAction(room, player, tk, result, submitErr)
	}
}

// afterAction publishes what the action produced and recycles the turn
// token; the next handlePlayTaki round routes it, including the game-over
// case.
func afterAction(room *database.Room, player *database.Player, tk *database.TakiGame, result game.Result, err error) error {
	renderEvents(room, tk, result.Events)
	if err != nil {
		log.Error(err)
	}
	tk.States[player.ID] <- statePlay
	return nil
}

// abandonTurn resolves the turn of a player whose prompt failed, so the
// token can move on before this goroutine unwinds.
func abandonTurn(room *database.Room, player *database.Player, tk *database.TakiGame, cause error) error {
	var result game.Result
	var err error
	if tk.Game.State().Phase == game.PhaseAwaitingColorChoice {
		result, err = tk.Game.SubmitColorChoice(player.ID, color.Red)
	} else {
		result, err = tk.Game.SubmitDraw(player.ID)
	}
	renderEvents(room, tk, result.Events)
	if err != nil {
		_ = finishTakiGame(room, tk, "")
		return cause
	}
	kickToken(tk, player.ID)
	return cause
}

func playRobot(room *database.Room, tk *database.TakiGame, seat int64, policy *bot.Policy) error {
	state := tk.Game.State()
	decision := policy.Decide(state, tk.Game.Hand(seat))
	if decision.Delay > 0 {
		time.Sleep(decision.Delay)
	}
	var result game.Result
	var err error
	switch decision.Type {
	case bot.ActionChooseColor:
		result, err = tk.Game.SubmitColorChoice(seat, decision.Color)
	case bot.ActionDraw:
		if state.Sequence != nil && state.Sequence.Player == seat {
			// a draw verdict from the owner of an open run closes the run
			result, err = tk.Game.SubmitEndSequence(seat)
		} else {
			result, err = tk.Game.SubmitDraw(seat)
		}
	default:
		result, err = tk.Game.SubmitPlay(seat, decision.Card)
	}
	renderEvents(room, tk, result.Events)
	return err
}

// playAbsent acts for a seat whose player is gone: a pending color falls to
// red, anything else becomes a draw.
func playAbsent(room *database.Room, tk *database.TakiGame, seat int64) error {
	var result game.Result
	var err error
	if tk.Game.State().Phase == game.PhaseAwaitingColorChoice {
		result, err = tk.Game.SubmitColorChoice(seat, color.Red)
	} else {
		result, err = tk.Game.SubmitDraw(seat)
	}
	renderEvents(room, tk, result.Events)
	return err
}

// kickToken hands the turn token to any live player still at the table.
func kickToken(tk *database.TakiGame, except int64) {
	for _, id := range tk.Players {
		if id == except {
			continue
		}
		if tk.HavePlay(database.GetPlayer(id)) {
			tk.States[id] <- statePlay
			return
		}
	}
}

func renderEvents(room *database.Room, tk *database.TakiGame, events []event.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case event.MatchStarted:
			database.Broadcast(room.ID, ui.Message.FirstCardFlipped(e.FirstCard))
		case event.TurnStarted:
			database.Broadcast(room.ID, ui.Message.PlayerTurnStarted(e.PlayerName), e.PlayerID)
		case event.CardPlayed:
			database.Broadcast(room.ID, ui.Message.PlayerPlayedCard(e.PlayerName, e.Card))
		case event.CardsDrawn:
			database.Broadcast(room.ID, ui.Message.PlayerDrewCards(e.PlayerName, len(e.Cards)), e.PlayerID)
			if p := database.GetPlayer(e.PlayerID); tk.HavePlay(p) {
				_ = p.WriteString(ui.Message.HumanPlayerDrewCards(e.Cards))
			}
		case event.ColorChanged:
			database.Broadcast(room.ID, ui.Message.PlayerPickedColor(e.PlayerName, e.Color))
		case event.ChainUpdated:
			if e.Count > 0 {
				database.Broadcast(room.ID, ui.Message.ChainRaised(e.Count))
			}
		case event.SequenceOpened:
			database.Broadcast(room.ID, ui.Message.PlayerOpenedTaki(e.PlayerName, e.Color))
		case event.SequenceClosed:
			database.Broadcast(room.ID, ui.Message.PlayerClosedTaki(e.PlayerName, e.FinalCard))
		case event.DirectionReversed:
			database.Broadcast(room.ID, ui.Message.TurnOrderReversed())
		case event.TurnSkipped:
			database.Broadcast(room.ID, ui.Message.PlayerTurnSkipped(e.PlayerName))
		case event.DeckReshuffled:
			database.Broadcast(room.ID, ui.Message.DeckReshuffled(e.Count))
		case event.GameOver:
			database.Broadcast(room.ID, ui.Message.WinnerFound(e.WinnerName))
		}
	}
}

func finishTakiGame(room *database.Room, tk *database.TakiGame, lastName string) error {
	if lastName != "" {
		database.Broadcast(room.ID, ui.Message.WinnerFound(lastName))
	} else if tk.Game.State().Winner == 0 {
		database.Broadcast(room.ID, ui.Message.MatchAborted())
	}
	room.Lock()
	room.Game = nil
	room.State = consts.RoomStateWaiting
	room.Unlock()
	for _, playerId := range tk.Players {
		tk.States[playerId] <- stateWaiting
	}
	return nil
}

func InitTakiGame(room *database.Room) (*database.TakiGame, error) {
	roomPlayers := database.RoomPlayers(room.ID)
	if len(roomPlayers)+room.Robots < consts.MinPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	players := make([]int64, 0)
	seats := make([]game.Player, 0)
	states := map[int64]chan int{}
	for playerId := range roomPlayers {
		p := database.GetPlayer(playerId)
		players = append(players, p.ID)
		seats = append(seats, database.NewTakiSeat(p))
		states[p.ID] = make(chan int, 1)
	}
	robots := map[int64]*bot.Policy{}
	for n := 1; n <= room.Robots; n++ {
		seat := database.NewRobotSeat(n)
		seats = append(seats, seat)
		robots[seat.PlayerID()] = bot.New(bot.DefaultConfig(), rand.New(rand.NewSource(time.Now().UnixNano()+int64(n))))
	}
	takiGame := game.New(seats, nil, rand.New(rand.NewSource(time.Now().UnixNano())))
	result, err := takiGame.Start()
	if err != nil {
		return nil, err
	}
	taki := &database.TakiGame{
		Room:        room,
		Players:     players,
		States:      states,
		Game:        takiGame,
		Robots:      robots,
		StartEvents: result.Events,
	}
	states[room.Creator] <- stateFirstCard
	return taki, nil
}
