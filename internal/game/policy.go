package game

import "math/rand"

// RowPolicy picks the row a player takes when it has to take one.
type RowPolicy func(rows []Row) int

// DefaultRowToTake is the fallback row choice: the cheapest row.
func DefaultRowToTake(state GameState) int {
	return LowestPenaltyRow(state.Rows)
}

// pickRow scans rows once and keeps the first row whose key beats the
// current best. Ties keep the earlier row.
func pickRow(rows []Row, key func(Row) int, better func(a, b int) bool) int {
	best := 0
	bestKey := 0
	for i, r := range rows {
		k := key(r)
		if i == 0 || better(k, bestKey) {
			best = i
			bestKey = k
		}
	}
	return best
}

func less(a, b int) bool    { return a < b }
func greater(a, b int) bool { return a > b }

func lastNumber(r Row) int {
	last, _ := r.Last()
	return last.Number
}

func rowLen(r Row) int { return len(r) }

// LowestPenaltyRow returns the row with the fewest bull heads.
func LowestPenaltyRow(rows []Row) int {
	return pickRow(rows, Row.Penalty, less)
}

// HighestPenaltyRow returns the row with the most bull heads.
func HighestPenaltyRow(rows []Row) int {
	return pickRow(rows, Row.Penalty, greater)
}

// LowestLastCardRow returns the row ending in the lowest card.
func LowestLastCardRow(rows []Row) int {
	return pickRow(rows, lastNumber, less)
}

// HighestLastCardRow returns the row ending in the highest card.
func HighestLastCardRow(rows []Row) int {
	return pickRow(rows, lastNumber, greater)
}

// FewestCardsRow returns the shortest row.
func FewestCardsRow(rows []Row) int {
	return pickRow(rows, rowLen, less)
}

// MostCardsRow returns the longest row.
func MostCardsRow(rows []Row) int {
	return pickRow(rows, rowLen, greater)
}

// RandomRow returns a policy drawing uniformly from rng. The caller owns rng.
func RandomRow(rng *rand.Rand) RowPolicy {
	return func(rows []Row) int {
		return rng.Intn(len(rows))
	}
}
