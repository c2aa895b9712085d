package game

import (
	"fmt"
	"strings"
)

// GameState is the read-only snapshot handed to players. It is a deep copy:
// mutating it never affects the game, and it never carries any hand.
type GameState struct {
	Rows   []Row // always RowCount rows
	Round  int   // 1-based round number
	Scores []int // one entry per player, in seat order
}

// RowPenalties returns the bull-head total of every row.
func (s GameState) RowPenalties() []int {
	out := make([]int, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Penalty()
	}
	return out
}

// String renders the table the way the verbose trace shows it.
func (s GameState) String() string {
	var sb strings.Builder
	sb.WriteString("=== Game State ===")
	for i, r := range s.Rows {
		fmt.Fprintf(&sb, "\nRow %d: %s", i, r)
	}
	sb.WriteString("\nScores:")
	for i, score := range s.Scores {
		fmt.Fprintf(&sb, " P%d:%d", i, score)
	}
	return sb.String()
}
