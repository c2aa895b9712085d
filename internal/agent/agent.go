// Package agent holds the reference strategies used to exercise the engine.
package agent

import (
	"math/rand"

	"github.com/peterkuimelis/sixnimmt/internal/game"
)

// Options tune an agent at construction time.
type Options struct {
	Name      string         // display name (empty = strategy name)
	RowPolicy game.RowPolicy // row to take when forced (nil = lowest penalty)
}

// base carries what every reference strategy shares.
type base struct {
	game.Seat
	name      string
	rowPolicy game.RowPolicy
}

func newBase(defaultName string, opts Options) base {
	name := opts.Name
	if name == "" {
		name = defaultName
	}
	return base{name: name, rowPolicy: opts.RowPolicy}
}

func (b *base) Name() string {
	return b.name
}

func (b *base) ChooseRowToTake(state game.GameState) int {
	if b.rowPolicy == nil {
		return game.DefaultRowToTake(state)
	}
	return b.rowPolicy(state.Rows)
}

// bestIndex returns the index of the first card whose key beats every
// earlier card.
func bestIndex(hand []game.Card, better func(a, b game.Card) bool) int {
	best := 0
	for i := 1; i < len(hand); i++ {
		if better(hand[i], hand[best]) {
			best = i
		}
	}
	return best
}

// --- BullHeadsFirst ---

// BullHeadsFirst always plays its most expensive card.
type BullHeadsFirst struct {
	base
}

func NewBullHeadsFirst(opts Options) *BullHeadsFirst {
	return &BullHeadsFirst{base: newBase("BullsHeadsFirstAgent", opts)}
}

func (a *BullHeadsFirst) ChooseCard(state game.GameState) int {
	return bestIndex(a.Cards, func(x, y game.Card) bool {
		return x.BullHeads() > y.BullHeads()
	})
}

// --- HighestCardFirst ---

// HighestCardFirst always plays its highest number.
type HighestCardFirst struct {
	base
}

func NewHighestCardFirst(opts Options) *HighestCardFirst {
	return &HighestCardFirst{base: newBase("HighestCardFirstAgent", opts)}
}

func (a *HighestCardFirst) ChooseCard(state game.GameState) int {
	return bestIndex(a.Cards, func(x, y game.Card) bool {
		return x.Number > y.Number
	})
}

// --- LowestCardFirst ---

// LowestCardFirst always plays its lowest number.
type LowestCardFirst struct {
	base
}

func NewLowestCardFirst(opts Options) *LowestCardFirst {
	return &LowestCardFirst{base: newBase("LowestCardFirstAgent", opts)}
}

func (a *LowestCardFirst) ChooseCard(state game.GameState) int {
	return bestIndex(a.Cards, func(x, y game.Card) bool {
		return x.Number < y.Number
	})
}

// --- Random ---

// Random plays a uniformly random card from its own source.
type Random struct {
	base
	rng *rand.Rand
}

// NewRandom creates a random agent. rng is owned by the agent from here on;
// it must not be shared with the engine's shuffle.
func NewRandom(rng *rand.Rand, opts Options) *Random {
	return &Random{base: newBase("RandomAgent", opts), rng: rng}
}

func (a *Random) ChooseCard(state game.GameState) int {
	return a.rng.Intn(len(a.Cards))
}
