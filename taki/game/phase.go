package game

// Phase is the position of a match in its turn cycle. TurnStart,
// ActionResolving and TurnEnd are passed through synchronously while an
// action resolves; between operations a match rests in Neutral,
// AwaitingAction, AwaitingColorChoice or GameOver.
type Phase int

const (
	PhaseNeutral Phase = iota
	PhaseTurnStart
	PhaseAwaitingAction
	PhaseActionResolving
	PhaseAwaitingColorChoice
	PhaseTurnEnd
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNeutral:
		return "Neutral"
	case PhaseTurnStart:
		return "TurnStart"
	case PhaseAwaitingAction:
		return "AwaitingAction"
	case PhaseActionResolving:
		return "ActionResolving"
	case PhaseAwaitingColorChoice:
		return "AwaitingColorChoice"
	case PhaseTurnEnd:
		return "TurnEnd"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}
