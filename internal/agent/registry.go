package agent

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/peterkuimelis/sixnimmt/internal/game"
)

// Factory builds a fresh agent. seed feeds the agent's private random
// source; deterministic strategies ignore it unless their row policy draws.
type Factory func(seed int64, opts Options) game.Player

// Registry maps strategy names to their constructors.
var Registry = map[string]Factory{
	"BullsHeadsFirstAgent": func(seed int64, opts Options) game.Player {
		return NewBullHeadsFirst(opts)
	},
	"HighestCardFirstAgent": func(seed int64, opts Options) game.Player {
		return NewHighestCardFirst(opts)
	},
	"LowestCardFirstAgent": func(seed int64, opts Options) game.Player {
		return NewLowestCardFirst(opts)
	},
	"RandomAgent": func(seed int64, opts Options) game.Player {
		return NewRandom(rand.New(rand.NewSource(seed)), opts)
	},
}

// RowPolicies maps row policy names to constructors. Policies that draw get
// their own source, seeded independently of the agent's card choices.
var RowPolicies = map[string]func(rng *rand.Rand) game.RowPolicy{
	"lowest_penalty":    func(*rand.Rand) game.RowPolicy { return game.LowestPenaltyRow },
	"highest_penalty":   func(*rand.Rand) game.RowPolicy { return game.HighestPenaltyRow },
	"lowest_last_card":  func(*rand.Rand) game.RowPolicy { return game.LowestLastCardRow },
	"highest_last_card": func(*rand.Rand) game.RowPolicy { return game.HighestLastCardRow },
	"fewest_cards":      func(*rand.Rand) game.RowPolicy { return game.FewestCardsRow },
	"most_cards":        func(*rand.Rand) game.RowPolicy { return game.MostCardsRow },
	"random":            game.RandomRow,
}

// Known reports whether name is a registered strategy.
func Known(name string) bool {
	_, ok := Registry[name]
	return ok
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RowPolicyNames returns the registered row policy names, sorted.
func RowPolicyNames() []string {
	names := make([]string, 0, len(RowPolicies))
	for name := range RowPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named strategy.
// Panics if the strategy is not found.
func Lookup(name string, seed int64, opts Options) game.Player {
	factory, ok := Registry[name]
	if !ok {
		panic(fmt.Sprintf("agent not found in registry: %q", name))
	}
	return factory(seed, opts)
}

// NewRowPolicy builds the named row policy. An empty name selects the
// default policy and returns nil.
func NewRowPolicy(name string, seed int64) (game.RowPolicy, error) {
	if name == "" {
		return nil, nil
	}
	ctor, ok := RowPolicies[name]
	if !ok {
		return nil, fmt.Errorf("unknown row policy %q", name)
	}
	return ctor(rand.New(rand.NewSource(seed))), nil
}
