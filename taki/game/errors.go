package game

import "errors"

var (
	// ErrIllegalMove rejects a play the rules forbid, including cards not
	// held by the acting player.
	ErrIllegalMove = errors.New("taki: illegal move")
	// ErrWrongPhase rejects an action the current phase does not accept.
	ErrWrongPhase = errors.New("taki: wrong phase")
	// ErrNotYourTurn rejects an action from a non-acting player.
	ErrNotYourTurn = errors.New("taki: not your turn")
	// ErrEmptyDeck reports that a draw could not be served even after
	// reshuffling the discard pile. Card conservation makes this an
	// invariant breach; the match cannot continue.
	ErrEmptyDeck = errors.New("taki: empty deck")
)
