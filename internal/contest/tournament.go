package contest

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultGamesPerMatchup matches the interactive contest's default.
const DefaultGamesPerMatchup = 50

// Stats accumulates one entry's results across a tournament.
type Stats struct {
	Name       string `json:"name"`
	Wins       int    `json:"wins"`
	Games      int    `json:"games"`
	TotalScore int    `json:"total_score"`
}

// WinRate returns the percentage of games won.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games) * 100
}

// AvgScore returns the mean penalty per game.
func (s Stats) AvgScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Games)
}

// MatchupResult is the head-to-head record of one pairing.
type MatchupResult struct {
	First       string `json:"first"`
	Second      string `json:"second"`
	FirstWins   int    `json:"first_wins"`
	SecondWins  int    `json:"second_wins"`
	Ties        int    `json:"ties"`
	FirstScore  int    `json:"first_score"`
	SecondScore int    `json:"second_score"`
}

// Results is the outcome of a tournament.
type Results struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Seed            int64           `json:"seed"`
	GamesPerMatchup int             `json:"games_per_matchup"`
	Matchups        []MatchupResult `json:"matchups"`
	Standings       []Stats         `json:"standings"` // best win rate first
}

// Tournament plays every pair of entries against each other
// GamesPerMatchup times, with fresh agents for every game.
type Tournament struct {
	ID              string
	Name            string
	Entries         []Entry
	GamesPerMatchup int
	Seed            int64

	logger *zap.Logger
}

// NewTournament validates the entries and creates a tournament. A nil
// logger disables progress logging.
func NewTournament(name string, entries []Entry, gamesPerMatchup int, seed int64, logger *zap.Logger) (*Tournament, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("tournament needs at least 2 entries, got %d", len(entries))
	}
	if gamesPerMatchup <= 0 {
		return nil, fmt.Errorf("games per matchup must be positive, got %d", gamesPerMatchup)
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if seen[e.DisplayName()] {
			return nil, fmt.Errorf("duplicate entry name %q", e.DisplayName())
		}
		seen[e.DisplayName()] = true
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.New().String()
	return &Tournament{
		ID:              id,
		Name:            name,
		Entries:         append([]Entry(nil), entries...),
		GamesPerMatchup: gamesPerMatchup,
		Seed:            seed,
		logger:          logger.With(zap.String("tournament_id", id)),
	}, nil
}

// Run plays the whole round robin. The same seed always yields the same
// results.
func (t *Tournament) Run() (*Results, error) {
	t.logger.Info("tournament starting",
		zap.String("name", t.Name),
		zap.Int("entries", len(t.Entries)),
		zap.Int("games_per_matchup", t.GamesPerMatchup),
		zap.Int64("seed", t.Seed),
	)

	stats := make(map[string]*Stats, len(t.Entries))
	for _, e := range t.Entries {
		stats[e.DisplayName()] = &Stats{Name: e.DisplayName()}
	}

	seeds := rand.New(rand.NewSource(t.Seed))
	res := &Results{
		ID:              t.ID,
		Name:            t.Name,
		Seed:            t.Seed,
		GamesPerMatchup: t.GamesPerMatchup,
	}

	for i := 0; i < len(t.Entries); i++ {
		for j := i + 1; j < len(t.Entries); j++ {
			a, b := t.Entries[i], t.Entries[j]
			m := MatchupResult{First: a.DisplayName(), Second: b.DisplayName()}

			for n := 0; n < t.GamesPerMatchup; n++ {
				gr, err := RunSingleGame([]Entry{a, b}, seeds.Int63(), GameOptions{})
				if err != nil {
					return nil, fmt.Errorf("%s vs %s game %d: %w", m.First, m.Second, n+1, err)
				}
				m.record(gr.Scores[0], gr.Scores[1])
				stats[m.First].add(gr.Scores[0], gr.Scores[0] < gr.Scores[1])
				stats[m.Second].add(gr.Scores[1], gr.Scores[1] < gr.Scores[0])
			}

			t.logger.Info("matchup finished",
				zap.String("first", m.First),
				zap.String("second", m.Second),
				zap.Int("first_wins", m.FirstWins),
				zap.Int("second_wins", m.SecondWins),
				zap.Int("ties", m.Ties),
			)
			res.Matchups = append(res.Matchups, m)
		}
	}

	res.Standings = standings(t.Entries, stats)
	t.logger.Info("tournament finished", zap.String("leader", res.Standings[0].Name))
	return res, nil
}

func (m *MatchupResult) record(first, second int) {
	m.FirstScore += first
	m.SecondScore += second
	switch {
	case first < second:
		m.FirstWins++
	case second < first:
		m.SecondWins++
	default:
		m.Ties++
	}
}

func (s *Stats) add(score int, won bool) {
	s.Games++
	s.TotalScore += score
	if won {
		s.Wins++
	}
}

// standings sorts by win rate, best first; equal rates keep entry order.
func standings(entries []Entry, stats map[string]*Stats) []Stats {
	out := make([]Stats, 0, len(entries))
	for _, e := range entries {
		out = append(out, *stats[e.DisplayName()])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WinRate() > out[j].WinRate()
	})
	return out
}
