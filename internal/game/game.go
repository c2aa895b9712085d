package game

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/peterkuimelis/sixnimmt/internal/log"
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Seed      int64           // shuffle seed; the shuffle never shares a source with any player
	Logger    log.EventLogger // receives every event (nil = in-memory)
	Out       io.Writer       // verbose trace destination (nil = stdout)
	NoShuffle bool            // deal 1..104 in order (for deterministic tests)
}

// Game runs one game of "6 nimmt!" between 2..10 players.
type Game struct {
	players []Player
	rows    []Row
	scores  []int
	round   int
	over    bool

	rng    *rand.Rand
	Logger log.EventLogger
	out    io.Writer
	trace  *log.TextLogger
}

type play struct {
	card   Card
	player int
}

// NewGame shuffles a fresh deck, deals HandSize cards to every player in
// deck order and lays the next RowCount cards out as the starting rows.
// It panics unless 2 <= len(players) <= 10.
func NewGame(players []Player, cfg GameConfig) *Game {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		panic(fmt.Sprintf("new game: need %d..%d players, got %d", MinPlayers, MaxPlayers, len(players)))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	g := &Game{
		players: append([]Player(nil), players...),
		scores:  make([]int, len(players)),
		round:   1,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		Logger:  logger,
		out:     out,
	}

	deck := NewDeck()
	if !cfg.NoShuffle {
		g.rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		g.log(log.NewShuffleEvent(len(deck)))
	}

	next := 0
	for id, p := range g.players {
		hand := append([]Card(nil), deck[next:next+HandSize]...)
		next += HandSize
		p.Initialize(id, len(g.players), hand)
		g.log(log.NewDealEvent(id, p.Name(), len(hand)))
	}

	g.rows = make([]Row, RowCount)
	for i := range g.rows {
		g.rows[i] = Row{deck[next]}
		next++
	}
	// The rest of the deck is never used.

	return g
}

// PlayGame plays all rounds and returns the final scores, index-aligned with
// the players passed to NewGame. verbose only adds a text trace.
func (g *Game) PlayGame(verbose bool) []int {
	if g.over {
		panic("play game: game already played")
	}
	if verbose {
		g.trace = log.NewTextLogger(g.out)
		defer func() { g.trace = nil }()
	}

	g.log(log.NewGameEvent(len(g.players)))
	g.log(log.NewTableEvent(0, g.GameState().String()))

	for r := 1; r <= Rounds; r++ {
		g.round = r
		g.playRound()
		g.log(log.NewTableEvent(r, g.GameState().String()))
	}
	g.over = true

	g.log(log.NewGameOverEvent(g.round, g.standings()))
	return g.Scores()
}

// GameState returns a snapshot of the table. It is the only view players get.
func (g *Game) GameState() GameState {
	return GameState{
		Rows:   cloneRows(g.rows),
		Round:  g.round,
		Scores: g.Scores(),
	}
}

// Scores returns a copy of the current scores.
func (g *Game) Scores() []int {
	return append([]int(nil), g.scores...)
}

// Round returns the current (or, once over, the last) round number.
func (g *Game) Round() int {
	return g.round
}

// Over reports whether PlayGame has completed.
func (g *Game) Over() bool {
	return g.over
}

// NumPlayers returns the number of seated players.
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// playRound collects one card from every player against the same frozen
// snapshot, then applies the cards to the table in ascending order.
func (g *Game) playRound() {
	g.log(log.NewRoundEvent(g.round))

	state := g.GameState()
	plays := make([]play, 0, len(g.players))
	for id, p := range g.players {
		hand := p.Hand()
		idx := p.ChooseCard(state)
		if idx < 0 || idx >= len(hand) {
			panic(fmt.Sprintf("round %d: %s chose card index %d, hand has %d cards", g.round, p.Name(), idx, len(hand)))
		}
		p.RemoveCard(idx)
		if got := len(p.Hand()); got != len(hand)-1 {
			panic(fmt.Sprintf("round %d: %s holds %d cards after playing, want %d", g.round, p.Name(), got, len(hand)-1))
		}
		plays = append(plays, play{card: hand[idx], player: id})
	}

	for _, pl := range plays {
		g.log(log.NewRevealEvent(g.round, pl.player, g.players[pl.player].Name(), pl.card.Number))
	}

	// Card numbers are unique, so this is a total order.
	sort.Slice(plays, func(i, j int) bool {
		return plays[i].card.Number < plays[j].card.Number
	})
	for _, pl := range plays {
		g.processCard(pl.card, pl.player)
	}
}

// processCard puts one card on the table, taking a row when it must.
func (g *Game) processCard(card Card, player int) {
	row := FindBestRow(g.rows, card)
	if row == -1 {
		choice := g.players[player].ChooseRowToTake(g.GameState())
		if choice < 0 || choice >= RowCount {
			panic(fmt.Sprintf("round %d: %s chose row %d, want 0..%d", g.round, g.players[player].Name(), choice, RowCount-1))
		}
		g.takeRow(player, choice, card, TakeForced)
		return
	}

	g.rows[row] = append(g.rows[row], card)
	g.log(log.NewPlaceEvent(g.round, player, g.players[player].Name(), card.Number, row, len(g.rows[row])))
	if len(g.rows[row]) == MaxRowLength {
		g.takeRow(player, row, card, TakeOverflow)
	}
}

// takeRow charges the row's bull heads to player and restarts the row with
// card. For an overflow the row already holds card as its 6th entry.
func (g *Game) takeRow(player, row int, card Card, reason TakeReason) {
	name := g.players[player].Name()
	penalty := g.rows[row].Penalty()

	switch reason {
	case TakeForced:
		g.log(log.NewTakeRowEvent(g.round, player, name, card.Number, row, penalty))
	case TakeOverflow:
		g.log(log.NewOverflowTakeEvent(g.round, player, name, card.Number, row, penalty))
	}

	old := g.scores[player]
	g.scores[player] += penalty
	g.rows[row] = Row{card}
	g.log(log.NewScoreChangeEvent(g.round, player, name, old, g.scores[player]))
}

func (g *Game) standings() string {
	lines := make([]string, len(g.players))
	for i, p := range g.players {
		lines[i] = fmt.Sprintf("%s: %d points", p.Name(), g.scores[i])
	}
	return strings.Join(lines, "\n")
}

// log records an event and, while a verbose game is running, echoes it.
func (g *Game) log(event log.GameEvent) {
	g.Logger.Log(event)
	if g.trace != nil {
		g.trace.Log(event)
	}
}
