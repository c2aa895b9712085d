package game

import (
	"strings"
)

// Row is one of the table rows, in placement order.
type Row []Card

// Penalty returns the total bull heads in the row.
func (r Row) Penalty() int {
	total := 0
	for _, c := range r {
		total += c.BullHeads()
	}
	return total
}

// Last returns the most recently placed card, or false for an empty row.
func (r Row) Last() (Card, bool) {
	if len(r) == 0 {
		return Card{}, false
	}
	return r[len(r)-1], true
}

// Clone returns a copy that shares no storage with r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

func (r Row) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// FindBestRow returns the index of the row whose last card is the closest
// one below card, or -1 if card is lower than every row's last card.
// Among equal gaps the lowest index wins; with unique card numbers two rows
// can never share a gap.
func FindBestRow(rows []Row, card Card) int {
	best := -1
	bestGap := 0
	for i, row := range rows {
		last, ok := row.Last()
		if !ok || last.Number >= card.Number {
			continue
		}
		gap := card.Number - last.Number
		if best == -1 || gap < bestGap {
			best = i
			bestGap = gap
		}
	}
	return best
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
