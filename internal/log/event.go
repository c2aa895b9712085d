package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewGame EventType = iota
	EventShuffle
	EventDeal
	EventNewRound
	EventReveal
	EventPlace
	EventTakeRow      // card too low for every row, player picked a row
	EventOverflowTake // card was the 6th in its row
	EventScoreChange
	EventTable
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventNewGame:
		return "NewGame"
	case EventShuffle:
		return "Shuffle"
	case EventDeal:
		return "Deal"
	case EventNewRound:
		return "NewRound"
	case EventReveal:
		return "Reveal"
	case EventPlace:
		return "Place"
	case EventTakeRow:
		return "TakeRow"
	case EventOverflowTake:
		return "OverflowTake"
	case EventScoreChange:
		return "ScoreChange"
	case EventTable:
		return "Table"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based, 0 during setup)
	Player  int       // acting player, -1 when not applicable
	Type    EventType // event type
	Card    int       // card number (if applicable)
	Row     int       // row index (if applicable)
	Penalty int       // bull heads taken (take events only)
	Details string    // human-readable detail string
}
