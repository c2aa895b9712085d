package contest

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ContestFile represents the top-level YAML structure.
type ContestFile struct {
	Name            string  `yaml:"name"`
	Seed            int64   `yaml:"seed"`
	GamesPerMatchup int     `yaml:"games_per_matchup"`
	Players         []Entry `yaml:"players"`
}

// ParseContestFile reads and parses a YAML contest file.
func ParseContestFile(path string) (*ContestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseContest(data)
}

// ParseContest parses YAML contest data. A missing games_per_matchup falls
// back to DefaultGamesPerMatchup.
func ParseContest(data []byte) (*ContestFile, error) {
	var cf ContestFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse contest YAML: %w", err)
	}
	if cf.GamesPerMatchup == 0 {
		cf.GamesPerMatchup = DefaultGamesPerMatchup
	}
	if len(cf.Players) == 0 {
		return nil, fmt.Errorf("contest %q lists no players", cf.Name)
	}
	for i, p := range cf.Players {
		if p.Agent == "" {
			return nil, fmt.Errorf("player %d: agent is required", i+1)
		}
	}
	return &cf, nil
}

// Tournament builds the tournament the file describes.
func (cf *ContestFile) Tournament(logger *zap.Logger) (*Tournament, error) {
	return NewTournament(cf.Name, cf.Players, cf.GamesPerMatchup, cf.Seed, logger)
}
