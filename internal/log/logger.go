package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- TeeLogger: fans events out to several loggers ---

// TeeLogger forwards every event to each wrapped logger. Events() reports
// the first logger's view.
type TeeLogger []EventLogger

func (t TeeLogger) Log(event GameEvent) {
	for _, l := range t {
		l.Log(event)
	}
}

func (t TeeLogger) Events() []GameEvent {
	if len(t) == 0 {
		return nil
	}
	return t[0].Events()
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	if e.Round == 0 {
		return fmt.Sprintf("setup | %s", e.Details)
	}
	return fmt.Sprintf("R%-3d  | %s", e.Round, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameEvent(numPlayers int) GameEvent {
	return GameEvent{
		Player:  -1,
		Type:    EventNewGame,
		Details: fmt.Sprintf("Starting \"6 nimmt!\" game with %d players", numPlayers),
	}
}

func NewShuffleEvent(deckSize int) GameEvent {
	return GameEvent{
		Player:  -1,
		Type:    EventShuffle,
		Details: fmt.Sprintf("Deck of %d cards shuffled", deckSize),
	}
}

func NewDealEvent(player int, name string, handSize int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDeal,
		Details: fmt.Sprintf("%s receives %d cards", name, handSize),
	}
}

func NewRoundEvent(round int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  -1,
		Type:    EventNewRound,
		Details: fmt.Sprintf("--- Round %d ---", round),
	}
}

func NewRevealEvent(round, player int, name string, card int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventReveal,
		Card:    card,
		Details: fmt.Sprintf("%s plays %d", name, card),
	}
}

func NewPlaceEvent(round, player int, name string, card, row, rowLen int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventPlace,
		Card:    card,
		Row:     row,
		Details: fmt.Sprintf("%s places %d on row %d (%d cards)", name, card, row, rowLen),
	}
}

func NewTakeRowEvent(round, player int, name string, card, row, penalty int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventTakeRow,
		Card:    card,
		Row:     row,
		Penalty: penalty,
		Details: fmt.Sprintf("%s cannot place %d and takes row %d (%d bull heads)", name, card, row, penalty),
	}
}

func NewOverflowTakeEvent(round, player int, name string, card, row, penalty int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventOverflowTake,
		Card:    card,
		Row:     row,
		Penalty: penalty,
		Details: fmt.Sprintf("%s lays the 6th card %d on row %d and takes it (%d bull heads)", name, card, row, penalty),
	}
}

func NewScoreChangeEvent(round, player int, name string, oldScore, newScore int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventScoreChange,
		Penalty: newScore - oldScore,
		Details: fmt.Sprintf("%s score: %d → %d", name, oldScore, newScore),
	}
}

// NewTableEvent carries a pre-rendered table; rows and scores are laid out
// by the engine, which owns the card type.
func NewTableEvent(round int, table string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  -1,
		Type:    EventTable,
		Details: table,
	}
}

func NewGameOverEvent(round int, standings string) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  -1,
		Type:    EventGameOver,
		Details: "=== Final Scores ===\n" + standings,
	}
}
