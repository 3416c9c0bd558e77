// Package bot picks actions for robot seats. The policy is pure: it never
// blocks, never fails, and is deterministic for a fixed random source. The
// returned Delay is a scheduling directive for the caller, not a sleep.
package bot

import (
	"math/rand"
	"sort"
	"time"

	"github.com/taki-online/server/taki/card"
	"github.com/taki-online/server/taki/card/color"
	"github.com/taki-online/server/taki/game"
)

type ActionType int

const (
	ActionPlay ActionType = iota + 1
	ActionDraw
	ActionChooseColor
)

// Decision is the policy's verdict for one prompt. Card is set for
// ActionPlay, Color for ActionChooseColor.
type Decision struct {
	Type  ActionType
	Card  card.Card
	Color color.Color
	Delay time.Duration
}

type Config struct {
	// SpecialPreference is the probability of reaching for a special card
	// when both specials and numbers are playable.
	SpecialPreference float64
	ThinkMin          time.Duration
	ThinkMax          time.Duration
}

func DefaultConfig() Config {
	return Config{
		SpecialPreference: 0.7,
		ThinkMin:          time.Second,
		ThinkMax:          3 * time.Second,
	}
}

type Policy struct {
	config Config
	rng    *rand.Rand
}

func New(config Config, rng *rand.Rand) *Policy {
	return &Policy{config: config, rng: rng}
}

// specialPriority ranks special kinds from most to least aggressive; the
// pick is uniform within the best tier present.
var specialPriority = [][]card.Kind{
	{card.Taki, card.SuperTaki},
	{card.PlusTwo},
	{card.Stop},
	{card.Plus},
	{card.ChangeDirection},
	{card.ChangeColor},
}

// Decide returns the action for the given table state and hand. Draw is
// always available, so there is no error case.
func (p *Policy) Decide(state game.State, hand []card.Card) Decision {
	delay := p.thinkDelay()
	if state.Phase == game.PhaseAwaitingColorChoice {
		return Decision{Type: ActionChooseColor, Color: p.pickColor(hand), Delay: delay}
	}
	legal := game.LegalPlays(hand, state.TopCard, state.ActiveColor, state.ChainCount, state.Sequence)
	if len(legal) == 0 {
		return Decision{Type: ActionDraw, Delay: delay}
	}
	return Decision{Type: ActionPlay, Card: p.pickCard(legal), Delay: delay}
}

func (p *Policy) pickCard(legal []card.Card) card.Card {
	var specials, numbers []card.Card
	for _, legalCard := range legal {
		if legalCard.Kind.IsNumber() {
			numbers = append(numbers, legalCard)
		} else {
			specials = append(specials, legalCard)
		}
	}

	if len(specials) > 0 && p.rng.Float64() < p.config.SpecialPreference {
		return p.pickSpecial(specials)
	}
	if len(numbers) > 0 {
		return p.pickNumber(numbers)
	}
	if len(specials) > 0 {
		return p.pickSpecial(specials)
	}
	return legal[p.rng.Intn(len(legal))]
}

func (p *Policy) pickSpecial(specials []card.Card) card.Card {
	for _, tier := range specialPriority {
		var candidates []card.Card
		for _, specialCard := range specials {
			for _, kind := range tier {
				if specialCard.Kind == kind {
					candidates = append(candidates, specialCard)
				}
			}
		}
		if len(candidates) > 0 {
			return candidates[p.rng.Intn(len(candidates))]
		}
	}
	return specials[p.rng.Intn(len(specials))]
}

// pickNumber favors high ranks: uniform among the top half of the legal
// numbers, rounded up.
func (p *Policy) pickNumber(numbers []card.Card) card.Card {
	sorted := make([]card.Card, len(numbers))
	copy(sorted, numbers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Kind.Value() > sorted[j].Kind.Value()
	})
	topHalf := (len(sorted) + 1) / 2
	return sorted[p.rng.Intn(topHalf)]
}

// pickColor tallies the non-wild colors left in hand and takes the most
// frequent, breaking ties at random. An all-wild hand picks uniformly.
func (p *Policy) pickColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, heldCard := range hand {
		if heldCard.Color.IsStandard() {
			counts[heldCard.Color]++
		}
	}

	var best []color.Color
	bestCount := 0
	for _, candidate := range color.Standard() {
		count := counts[candidate]
		switch {
		case count > bestCount:
			bestCount = count
			best = append(best[:0], candidate)
		case count == bestCount:
			best = append(best, candidate)
		}
	}
	return best[p.rng.Intn(len(best))]
}

func (p *Policy) thinkDelay() time.Duration {
	if p.config.ThinkMax <= p.config.ThinkMin {
		return p.config.ThinkMin
	}
	return p.config.ThinkMin + time.Duration(p.rng.Int63n(int64(p.config.ThinkMax-p.config.ThinkMin)))
}
