package game

import (
	"math/rand"
	"testing"

	"github.com/peterkuimelis/sixnimmt/internal/log"
)

// ScriptedPlayer is a Player that follows a predefined script of card
// numbers and row choices, recording everything the engine shows it.
// Used in tests to deterministically drive the game.
type ScriptedPlayer struct {
	Seat
	t    *testing.T
	name string

	plays []int // card numbers, one per round
	pos   int

	rows   []int // row choices for forced takes
	rowPos int

	States    []GameState // every state passed to ChooseCard
	RowStates []GameState // every state passed to ChooseRowToTake
	HandSizes []int       // hand size at each ChooseCard
}

func NewScriptedPlayer(t *testing.T, name string) *ScriptedPlayer {
	return &ScriptedPlayer{t: t, name: name}
}

func (sp *ScriptedPlayer) AddPlays(numbers ...int) *ScriptedPlayer {
	sp.plays = append(sp.plays, numbers...)
	return sp
}

func (sp *ScriptedPlayer) AddRowChoice(rows ...int) *ScriptedPlayer {
	sp.rows = append(sp.rows, rows...)
	return sp
}

// SetHand replaces the dealt hand, for scenarios that need specific cards.
func (sp *ScriptedPlayer) SetHand(numbers ...int) {
	sp.Cards = sp.Cards[:0]
	for _, n := range numbers {
		sp.Cards = append(sp.Cards, NewCard(n))
	}
}

func (sp *ScriptedPlayer) Name() string { return sp.name }

func (sp *ScriptedPlayer) ChooseCard(state GameState) int {
	sp.States = append(sp.States, state)
	sp.HandSizes = append(sp.HandSizes, len(sp.Cards))

	if sp.pos >= len(sp.plays) {
		// Default: play the first card.
		return 0
	}
	want := sp.plays[sp.pos]
	sp.pos++
	for i, c := range sp.Cards {
		if c.Number == want {
			return i
		}
	}
	sp.t.Fatalf("[%s] scripted card %d not in hand %v", sp.name, want, sp.Cards)
	return -1
}

func (sp *ScriptedPlayer) ChooseRowToTake(state GameState) int {
	sp.RowStates = append(sp.RowStates, state)
	if sp.rowPos >= len(sp.rows) {
		return DefaultRowToTake(state)
	}
	row := sp.rows[sp.rowPos]
	sp.rowPos++
	return row
}

// randomPlayer plays uniformly random cards from its own source and records
// the indices it picked.
type randomPlayer struct {
	Seat
	rng   *rand.Rand
	Picks []int
}

func newRandomPlayer(seed int64) *randomPlayer {
	return &randomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPlayer) Name() string { return "random" }

func (p *randomPlayer) ChooseCard(state GameState) int {
	idx := p.rng.Intn(len(p.Cards))
	p.Picks = append(p.Picks, idx)
	return idx
}

// --- Test table helpers ---

func makeRow(numbers ...int) Row {
	r := make(Row, len(numbers))
	for i, n := range numbers {
		r[i] = NewCard(n)
	}
	return r
}

func rowNumbers(r Row) []int {
	out := make([]int, len(r))
	for i, c := range r {
		out[i] = c.Number
	}
	return out
}

// newTestGame seats the players without shuffling, so seat i holds
// 10i+1..10i+10 and the rows start from the next four cards.
func newTestGame(t *testing.T, players ...Player) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := NewGame(players, GameConfig{Logger: logger, NoShuffle: true})
	return g, logger
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic: %s", what)
		}
	}()
	fn()
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
