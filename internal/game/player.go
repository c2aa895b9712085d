package game

import "fmt"

// Player is the capability every strategy implements. The engine trusts
// players: an out-of-range index is a programming error and aborts the game.
type Player interface {
	// Initialize hands the player its seat and starting hand. Called exactly
	// once per game, before the first round.
	Initialize(playerID, numPlayers int, hand []Card)

	// ChooseCard returns an index into the current hand.
	ChooseCard(state GameState) int

	// ChooseRowToTake returns the row (0..3) to take when the played card is
	// lower than every row's last card.
	ChooseRowToTake(state GameState) int

	// Hand returns a copy of the cards still held.
	Hand() []Card

	// RemoveCard drops the card at index, keeping the order of the rest.
	RemoveCard(index int)

	// Name identifies the player in reports.
	Name() string
}

// Seat holds the per-game state every player needs. Strategies embed it and
// supply ChooseCard and Name; ChooseRowToTake defaults to the lowest-penalty
// row and can be overridden.
type Seat struct {
	ID         int
	NumPlayers int
	Cards      []Card
}

func (s *Seat) Initialize(playerID, numPlayers int, hand []Card) {
	s.ID = playerID
	s.NumPlayers = numPlayers
	s.Cards = append([]Card(nil), hand...)
}

func (s *Seat) Hand() []Card {
	return append([]Card(nil), s.Cards...)
}

func (s *Seat) RemoveCard(index int) {
	if index < 0 || index >= len(s.Cards) {
		panic(fmt.Sprintf("remove card: index %d out of range for hand of %d", index, len(s.Cards)))
	}
	s.Cards = append(s.Cards[:index], s.Cards[index+1:]...)
}

func (s *Seat) ChooseRowToTake(state GameState) int {
	return DefaultRowToTake(state)
}
