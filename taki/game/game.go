package game

import (
	"math/rand"
	"sync"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/event"
)

const startingHandSize = 8

// Result carries the outcome of one submitted action: the notifications it
// produced, in order, and a snapshot of the table after it resolved.
type Result struct {
	Events []event.Event
	State  State
}

// Game is the authoritative turn state machine of one match. Every submit
// operation resolves fully under one mutex before the next is accepted; a
// rejected operation leaves the match untouched.
type Game struct {
	mu sync.Mutex

	seats   []Player
	catalog []card.Card
	rng     *rand.Rand

	players *PlayerIterator
	deck    *Deck
	pile    *Pile

	phase       Phase
	activeColor color.Color
	chain       int
	sequence    *Sequence
	winner      int64

	// per-turn transient flags, consumed by finishTurn
	skipNext  bool
	extraTurn bool
	// set between a fresh SuperTaki play and its color choice
	superTaki bool
}

// New seats the players around a table holding the given card set; a nil
// catalog means the standard one. The match stays in Neutral until Start.
func New(seats []Player, catalog []card.Card, rng *rand.Rand) *Game {
	if catalog == nil {
		catalog = card.NewStandardCatalog()
	}
	return &Game{
		seats:   seats,
		catalog: catalog,
		rng:     rng,
		players: newPlayerIterator(seats),
		deck:    NewDeck(catalog, rng),
		pile:    NewPile(),
		phase:   PhaseNeutral,
	}
}

// Start deals the opening hands, then flips deck cards onto the pile until
// a number card surfaces; its color opens the play. Flipped specials stay
// buried in the pile.
func (g *Game) Start() (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseNeutral {
		return Result{}, ErrWrongPhase
	}
	var events []event.Event
	var dealErr error
	g.players.ForEach(func(controller *playerController) {
		cards, err := g.drawFromDeck(startingHandSize, &events)
		if err != nil {
			dealErr = err
			return
		}
		controller.hand.AddCards(cards)
	})
	if dealErr != nil {
		return Result{}, dealErr
	}
	for {
		flipped, err := g.deck.DrawOne()
		if err != nil {
			return Result{}, err
		}
		g.pile.Add(flipped)
		if flipped.Kind.IsNumber() {
			g.activeColor = flipped.Color
			break
		}
	}
	events = append(events, event.MatchStarted{FirstCard: g.pile.Top()})
	g.phase = PhaseAwaitingAction
	first := g.players.Next()
	events = append(events, event.TurnStarted{PlayerID: first.ID(), PlayerName: first.Name()})
	return g.result(events), nil
}

// Hand returns a copy of the player's current cards.
func (g *Game) Hand(playerID int64) []card.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	controller := g.players.Controller(playerID)
	if controller == nil {
		return nil
	}
	return controller.hand.Cards()
}

// LegalMoves filters the player's hand down to the cards playable on the
// current table. Safe to call for menu highlighting at any time.
func (g *Game) LegalMoves(playerID int64) []card.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	controller := g.players.Controller(playerID)
	if controller == nil || g.phase != PhaseAwaitingAction {
		return nil
	}
	return LegalPlays(controller.hand.Cards(), g.pile.Top(), g.activeColor, g.chain, g.sequence)
}

// SubmitPlay plays one card from the acting player's hand.
func (g *Game) SubmitPlay(playerID int64, played card.Card) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseAwaitingAction {
		return Result{}, ErrWrongPhase
	}
	actor := g.players.Current()
	if actor.ID() != playerID {
		return Result{}, ErrNotYourTurn
	}
	held, ok := actor.hand.Find(played)
	if !ok {
		return Result{}, ErrIllegalMove
	}
	if !Playable(held, g.pile.Top(), g.activeColor, g.chain, g.sequence) {
		return Result{}, ErrIllegalMove
	}

	g.phase = PhaseActionResolving
	actor.hand.Remove(held)
	g.pile.Add(held)
	events := []event.Event{event.CardPlayed{PlayerID: actor.ID(), PlayerName: actor.Name(), Card: held}}

	// The hand-empty check comes before any continuation is offered: the
	// last card wins on the spot, whatever its kind.
	if actor.hand.Empty() {
		g.sequence = nil
		g.winner = actor.ID()
		g.phase = PhaseGameOver
		events = append(events, event.GameOver{WinnerID: actor.ID(), WinnerName: actor.Name()})
		return g.result(events), nil
	}

	if g.sequence != nil {
		g.extendSequence(actor, held, &events)
	} else {
		g.resolveEffect(actor, held, &events)
	}
	return g.result(events), nil
}

// SubmitDraw draws for the acting player: the accumulated chain amount when
// a draw debt is pending, one card otherwise. Drawing while the player's
// own run is open closes the run without resolving a final-card effect.
func (g *Game) SubmitDraw(playerID int64) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseAwaitingAction {
		return Result{}, ErrWrongPhase
	}
	actor := g.players.Current()
	if actor.ID() != playerID {
		return Result{}, ErrNotYourTurn
	}
	g.phase = PhaseActionResolving
	var events []event.Event
	if g.sequence != nil {
		g.sequence = nil
		events = append(events, event.SequenceClosed{PlayerID: actor.ID(), PlayerName: actor.Name(), FinalCard: g.pile.Top()})
	}
	amount := 1
	fromChain := g.chain > 0
	if fromChain {
		amount = g.chain
	}
	cards, err := g.drawFromDeck(amount, &events)
	if err != nil {
		g.phase = PhaseGameOver
		return Result{}, err
	}
	actor.hand.AddCards(cards)
	events = append(events, event.CardsDrawn{PlayerID: actor.ID(), PlayerName: actor.Name(), Cards: cards, FromChain: fromChain})
	if fromChain {
		g.chain = 0
		events = append(events, event.ChainUpdated{Count: 0})
	}
	g.finishTurn(&events)
	return g.result(events), nil
}

// SubmitColorChoice resolves a pending wild-card color. A fresh SuperTaki
// opens its run in the chosen color.
func (g *Game) SubmitColorChoice(playerID int64, chosen color.Color) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseAwaitingColorChoice {
		return Result{}, ErrWrongPhase
	}
	actor := g.players.Current()
	if actor.ID() != playerID {
		return Result{}, ErrNotYourTurn
	}
	if !chosen.IsStandard() {
		return Result{}, ErrIllegalMove
	}
	g.phase = PhaseActionResolving
	g.activeColor = chosen
	events := []event.Event{event.ColorChanged{PlayerID: actor.ID(), PlayerName: actor.Name(), Color: chosen}}
	if g.superTaki {
		g.superTaki = false
		g.sequence = &Sequence{Player: actor.ID(), Color: chosen}
		events = append(events, event.SequenceOpened{PlayerID: actor.ID(), PlayerName: actor.Name(), Color: chosen})
		g.phase = PhaseAwaitingAction
		return g.result(events), nil
	}
	g.finishTurn(&events)
	return g.result(events), nil
}

// SubmitEndSequence closes the acting player's open run; the final card's
// effect resolves at the close.
func (g *Game) SubmitEndSequence(playerID int64) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseAwaitingAction || g.sequence == nil {
		return Result{}, ErrWrongPhase
	}
	actor := g.players.Current()
	if actor.ID() != playerID || g.sequence.Player != playerID {
		return Result{}, ErrNotYourTurn
	}
	g.phase = PhaseActionResolving
	g.sequence = nil
	final := g.pile.Top()
	events := []event.Event{event.SequenceClosed{PlayerID: actor.ID(), PlayerName: actor.Name(), FinalCard: final}}
	switch final.Kind {
	case card.Stop:
		g.skipNext = true
	case card.Plus:
		g.extraTurn = true
	case card.PlusTwo:
		g.chain += 2
		events = append(events, event.ChainUpdated{Count: g.chain})
	case card.ChangeDirection:
		g.players.Reverse()
		events = append(events, event.DirectionReversed{Direction: g.players.Direction()})
		if g.players.Size() == 2 {
			g.skipNext = true
		}
	}
	g.finishTurn(&events)
	return g.result(events), nil
}

// State returns a read-only snapshot of the public table state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// Reset abandons the match: chain, run and per-turn flags clear together
// and the table returns to Neutral with a freshly shuffled deck.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.players = newPlayerIterator(g.seats)
	g.deck = NewDeck(g.catalog, g.rng)
	g.pile = NewPile()
	g.phase = PhaseNeutral
	g.activeColor = 0
	g.chain = 0
	g.sequence = nil
	g.winner = 0
	g.skipNext = false
	g.extraTurn = false
	g.superTaki = false
}

// extendSequence keeps an open run alive: effects wait for the close, a
// Taki continuation re-anchors the run to its own color and a SuperTaki
// keeps the current one.
func (g *Game) extendSequence(actor *playerController, played card.Card, events *[]event.Event) {
	if played.Kind == card.Taki && played.Color != g.sequence.Color {
		g.sequence = &Sequence{Player: actor.ID(), Color: played.Color}
		g.activeColor = played.Color
		*events = append(*events, event.ColorChanged{PlayerID: actor.ID(), PlayerName: actor.Name(), Color: played.Color})
	}
	g.phase = PhaseAwaitingAction
}

func (g *Game) resolveEffect(actor *playerController, played card.Card, events *[]event.Event) {
	if !played.Kind.IsWild() {
		g.activeColor = played.Color
	}
	switch played.Kind {
	case card.Stop:
		g.skipNext = true
		g.finishTurn(events)
	case card.Plus:
		g.extraTurn = true
		g.finishTurn(events)
	case card.PlusTwo:
		g.chain += 2
		*events = append(*events, event.ChainUpdated{Count: g.chain})
		g.finishTurn(events)
	case card.ChangeDirection:
		g.players.Reverse()
		*events = append(*events, event.DirectionReversed{Direction: g.players.Direction()})
		// with two seats a reversal plays as a skip
		if g.players.Size() == 2 {
			g.skipNext = true
		}
		g.finishTurn(events)
	case card.Taki:
		g.sequence = &Sequence{Player: actor.ID(), Color: played.Color}
		*events = append(*events, event.SequenceOpened{PlayerID: actor.ID(), PlayerName: actor.Name(), Color: played.Color})
		g.phase = PhaseAwaitingAction
	case card.ChangeColor:
		g.phase = PhaseAwaitingColorChoice
	case card.SuperTaki:
		g.superTaki = true
		g.phase = PhaseAwaitingColorChoice
	default:
		g.finishTurn(events)
	}
}

// finishTurn clears the per-turn flags and hands the turn to the next
// seat, honoring a pending skip or an earned extra turn. Chain and run
// state persist across turns.
func (g *Game) finishTurn(events *[]event.Event) {
	g.phase = PhaseTurnEnd
	if g.extraTurn {
		g.extraTurn = false
		g.phase = PhaseAwaitingAction
		actor := g.players.Current()
		*events = append(*events, event.TurnStarted{PlayerID: actor.ID(), PlayerName: actor.Name()})
		return
	}
	next := g.players.Next()
	if g.skipNext {
		g.skipNext = false
		*events = append(*events, event.TurnSkipped{PlayerID: next.ID(), PlayerName: next.Name()})
		next = g.players.Next()
	}
	g.phase = PhaseAwaitingAction
	*events = append(*events, event.TurnStarted{PlayerID: next.ID(), PlayerName: next.Name()})
}

// drawFromDeck serves count cards, moving the discard pile (top card
// excluded) back into the deck whenever it runs dry. Failing even after a
// refill means cards were lost, which aborts the match.
func (g *Game) drawFromDeck(count int, events *[]event.Event) ([]card.Card, error) {
	drawn := make([]card.Card, 0, count)
	for len(drawn) < count {
		next, err := g.deck.DrawOne()
		if err != nil {
			buried := g.pile.TakeAllButTop()
			if len(buried) == 0 {
				return nil, ErrEmptyDeck
			}
			g.deck.Refill(buried)
			*events = append(*events, event.DeckReshuffled{Count: len(buried)})
			continue
		}
		drawn = append(drawn, next)
	}
	return drawn, nil
}

func (g *Game) result(events []event.Event) Result {
	return Result{Events: events, State: g.snapshot()}
}

func (g *Game) snapshot() State {
	state := State{
		Phase:            g.phase,
		ActiveColor:      g.activeColor,
		TopCard:          g.pile.Top(),
		ChainCount:       g.chain,
		Direction:        g.players.Direction(),
		DeckSize:         g.deck.Size(),
		PileSize:         g.pile.Size(),
		Winner:           g.winner,
		PlayerNames:      make(map[int64]string, g.players.Size()),
		PlayerHandCounts: make(map[int64]int, g.players.Size()),
	}
	if g.phase != PhaseNeutral {
		state.ActivePlayer = g.players.Current().ID()
	}
	if g.sequence != nil {
		sequence := *g.sequence
		state.Sequence = &sequence
	}
	g.players.ForEach(func(controller *playerController) {
		state.PlayerSequence = append(state.PlayerSequence, controller.ID())
		state.PlayerNames[controller.ID()] = controller.Name()
		state.PlayerHandCounts[controller.ID()] = controller.hand.Size()
	})
	return state
}
