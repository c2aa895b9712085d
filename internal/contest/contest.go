// Package contest runs single games and round-robin tournaments between
// registered agents and reports the outcome.
package contest

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/peterkuimelis/sixnimmt/internal/agent"
	"github.com/peterkuimelis/sixnimmt/internal/game"
	"github.com/peterkuimelis/sixnimmt/internal/log"
)

// Entry is one participant: a registered strategy under a display name.
type Entry struct {
	Name      string `yaml:"name" json:"name"`
	Agent     string `yaml:"agent" json:"agent"`
	RowPolicy string `yaml:"row_policy,omitempty" json:"row_policy,omitempty"`
}

// DisplayName returns Name, falling back to the strategy name.
func (e Entry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Agent
}

// Validate checks that the entry refers to a known strategy and row policy.
func (e Entry) Validate() error {
	if !agent.Known(e.Agent) {
		return fmt.Errorf("unknown agent %q (have %v)", e.Agent, agent.Names())
	}
	if e.RowPolicy != "" {
		if _, ok := agent.RowPolicies[e.RowPolicy]; !ok {
			return fmt.Errorf("entry %s: unknown row policy %q (have %v)", e.DisplayName(), e.RowPolicy, agent.RowPolicyNames())
		}
	}
	return nil
}

// EntriesFromAgents builds one entry per strategy name.
func EntriesFromAgents(names []string) []Entry {
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = Entry{Agent: n}
	}
	return entries
}

// newPlayer builds a fresh agent for one game. Card choices and row policy
// each get their own seed drawn from seeds.
func newPlayer(e Entry, seeds *rand.Rand) (game.Player, error) {
	agentSeed := seeds.Int63()
	policySeed := seeds.Int63()

	policy, err := agent.NewRowPolicy(e.RowPolicy, policySeed)
	if err != nil {
		return nil, err
	}
	return agent.Lookup(e.Agent, agentSeed, agent.Options{Name: e.DisplayName(), RowPolicy: policy}), nil
}

// GameOptions controls how a single game is observed.
type GameOptions struct {
	Verbose bool
	Out     io.Writer       // trace destination (nil = stdout)
	Logger  log.EventLogger // nil = in-memory
}

// Placing is one line of a game's final ranking.
type Placing struct {
	Seat  int    `json:"seat"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// GameResult is the outcome of one game.
type GameResult struct {
	Seed    int64           `json:"seed"`
	Names   []string        `json:"names"`
	Scores  []int           `json:"scores"`
	Ranking []Placing       `json:"ranking"` // lowest score first
	Events  []log.GameEvent `json:"-"`
}

// RunSingleGame plays one game between entries, seated in the given order.
// The shuffle and every agent draw from separate sources derived from seed.
func RunSingleGame(entries []Entry, seed int64, opts GameOptions) (*GameResult, error) {
	if len(entries) < game.MinPlayers || len(entries) > game.MaxPlayers {
		return nil, fmt.Errorf("need %d..%d players, got %d", game.MinPlayers, game.MaxPlayers, len(entries))
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}

	seeds := rand.New(rand.NewSource(seed))
	shuffleSeed := seeds.Int63()

	players := make([]game.Player, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		p, err := newPlayer(e, seeds)
		if err != nil {
			return nil, err
		}
		players[i] = p
		names[i] = e.DisplayName()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	g := game.NewGame(players, game.GameConfig{
		Seed:   shuffleSeed,
		Logger: logger,
		Out:    opts.Out,
	})
	scores := g.PlayGame(opts.Verbose)

	return &GameResult{
		Seed:    seed,
		Names:   names,
		Scores:  scores,
		Ranking: rank(names, scores),
		Events:  logger.Events(),
	}, nil
}

// rank orders seats by score, lowest first; equal scores keep seat order.
func rank(names []string, scores []int) []Placing {
	out := make([]Placing, len(scores))
	for i := range scores {
		out[i] = Placing{Seat: i, Name: names[i], Score: scores[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return out
}
