package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/sixnimmt/internal/contest"
	"github.com/peterkuimelis/sixnimmt/internal/log"
)

// EventView is a simplified game event for tool clients.
type EventView struct {
	Round   int    `json:"round"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    int    `json:"card,omitempty"`
	Penalty int    `json:"penalty,omitempty"`
	Details string `json:"details"`
}

// AgentsResponse is returned by list_agents.
type AgentsResponse struct {
	Agents      []string `json:"agents"`
	RowPolicies []string `json:"row_policies"`
}

// GameResponse is returned by play_game.
type GameResponse struct {
	*contest.GameResult
	Events []EventView `json:"events,omitempty"`
}

// TournamentResponse is returned by run_tournament.
type TournamentResponse struct {
	*contest.Results
}

func eventViews(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Round:   e.Round,
			Player:  e.Player,
			Type:    e.Type.String(),
			Card:    e.Card,
			Penalty: e.Penalty,
			Details: e.Details,
		})
	}
	return views
}

// respondJSON marshals a response to a JSON string.
func respondJSON(resp any) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
