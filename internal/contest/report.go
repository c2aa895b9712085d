package contest

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("=", 50)

// FormatGameResult writes a game's final ranking, lowest score first.
func FormatGameResult(w io.Writer, res *GameResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Final Results ===")
	for i, p := range res.Ranking {
		fmt.Fprintf(w, "%d. %s (seat %d): %d points\n", i+1, p.Name, p.Seat, p.Score)
	}
}

// FormatMatchup writes the head-to-head line pair for one matchup.
func FormatMatchup(w io.Writer, m MatchupResult) {
	fmt.Fprintf(w, "\n%s vs %s\n", m.First, m.Second)
	fmt.Fprintf(w, "  %s: %d wins\n", m.First, m.FirstWins)
	fmt.Fprintf(w, "  %s: %d wins\n", m.Second, m.SecondWins)
	if m.Ties > 0 {
		fmt.Fprintf(w, "  ties: %d\n", m.Ties)
	}
}

// FormatStandings writes the standings table.
func FormatStandings(w io.Writer, standings []Stats) {
	fmt.Fprintf(w, "\n%s\nTOURNAMENT RESULTS\n%s\n", rule, rule)
	fmt.Fprintf(w, "%-24s%-10s%-12s%-12s\n", "Player", "Wins", "Win Rate", "Avg Score")
	fmt.Fprintln(w, strings.Repeat("-", 58))
	for _, s := range standings {
		fmt.Fprintf(w, "%-24s%-10d%-12s%-12.1f\n", s.Name, s.Wins, fmt.Sprintf("%.1f%%", s.WinRate()), s.AvgScore())
	}
}

// FormatResults writes a whole tournament report.
func FormatResults(w io.Writer, res *Results) {
	fmt.Fprintf(w, "Starting \"6 nimmt!\" Tournament %s\n", res.Name)
	fmt.Fprintf(w, "Games per matchup: %d (seed %d)\n", res.GamesPerMatchup, res.Seed)
	fmt.Fprintln(w, rule)
	for _, m := range res.Matchups {
		FormatMatchup(w, m)
	}
	FormatStandings(w, res.Standings)
}
