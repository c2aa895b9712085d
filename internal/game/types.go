package game

import "fmt"

const (
	DeckSize      = 104
	RowCount      = 4
	HandSize      = 10
	Rounds        = HandSize
	MaxRowLength  = 6 // the 6th card in a row triggers a take
	MinPlayers    = 2
	MaxPlayers    = 10
	MaxBullHeads  = 7
	minCardNumber = 1
)

// BullHeads returns the penalty weight of a card number.
func BullHeads(number int) int {
	switch {
	case number == 55:
		return 7
	case number%11 == 0:
		return 5
	case number%10 == 0:
		return 3
	case number%5 == 0:
		return 2
	default:
		return 1
	}
}

// Card is a single numbered card. The bull-head weight is derived from the
// number, so a Card is fully described by it.
type Card struct {
	Number int
}

// NewCard creates a card with the given number.
func NewCard(number int) Card {
	return Card{Number: number}
}

// BullHeads returns the card's penalty weight.
func (c Card) BullHeads() int {
	return BullHeads(c.Number)
}

func (c Card) String() string {
	return fmt.Sprintf("%d(%d)", c.Number, c.BullHeads())
}

// NewDeck returns the full deck, cards 1..104 in ascending order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for n := minCardNumber; n <= DeckSize; n++ {
		deck = append(deck, NewCard(n))
	}
	return deck
}

// TakeReason says why a player took a row.
type TakeReason int

const (
	// TakeForced: the played card was lower than every row's last card.
	TakeForced TakeReason = iota
	// TakeOverflow: the played card was the 6th card of its row.
	TakeOverflow
)

func (r TakeReason) String() string {
	switch r {
	case TakeForced:
		return "forced"
	case TakeOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}
