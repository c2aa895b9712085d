package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/sixnimmt/internal/agent"
	"github.com/peterkuimelis/sixnimmt/internal/contest"
)

// MaxGamesPerMatchup bounds run_tournament so one call stays quick.
const MaxGamesPerMatchup = 1000

// logger receives tournament progress, set by main.
var logger = zap.NewNop()

// SetLogger sets the logger used for tournament progress.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// RegisterTools adds all simulator tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(listAgentsTool(), handleListAgents)
	s.AddTool(playGameTool(), handlePlayGame)
	s.AddTool(runTournamentTool(), handleRunTournament)
}

// --- Tool definitions ---

func listAgentsTool() mcp.Tool {
	return mcp.NewTool("list_agents",
		mcp.WithDescription("List the registered \"6 nimmt!\" strategies and row policies. Read-only."),
	)
}

func playGameTool() mcp.Tool {
	return mcp.NewTool("play_game",
		mcp.WithDescription("Play one complete \"6 nimmt!\" game (10 rounds) between 2-10 agents and return the final scores. "+
			"Lower scores are better. The same seed always gives the same game."),
		mcp.WithString("agents", mcp.Required(), mcp.Description("Space- or comma-separated agent names, one per seat (see list_agents)")),
		mcp.WithNumber("seed", mcp.Description("Seed for the shuffle and every agent's random source (default 1)")),
		mcp.WithBoolean("include_events", mcp.Description("Include the full event log in the response")),
	)
}

func runTournamentTool() mcp.Tool {
	return mcp.NewTool("run_tournament",
		mcp.WithDescription("Run a round-robin tournament: every pair of agents plays games_per_matchup two-player games. "+
			"Returns head-to-head records and standings sorted by win rate."),
		mcp.WithString("agents", mcp.Required(), mcp.Description("Space- or comma-separated agent names (at least 2, names must be distinct)")),
		mcp.WithNumber("games_per_matchup", mcp.Description("Games per pairing (default 50, max 1000)")),
		mcp.WithNumber("seed", mcp.Description("Tournament seed (default 1)")),
	)
}

// --- Tool handlers ---

func handleListAgents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(respondJSON(AgentsResponse{
		Agents:      agent.Names(),
		RowPolicies: agent.RowPolicyNames(),
	})), nil
}

func handlePlayGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := splitAgents(request.GetString("agents", ""))
	if len(names) == 0 {
		return mcp.NewToolResultError("agents is required"), nil
	}
	seed := int64(request.GetInt("seed", 1))

	res, err := contest.RunSingleGame(contest.EntriesFromAgents(names), seed, contest.GameOptions{})
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to play game: %v", err), nil
	}

	resp := GameResponse{GameResult: res}
	if request.GetBool("include_events", false) {
		resp.Events = eventViews(res.Events)
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleRunTournament(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := splitAgents(request.GetString("agents", ""))
	games := request.GetInt("games_per_matchup", contest.DefaultGamesPerMatchup)
	seed := int64(request.GetInt("seed", 1))

	if games < 1 || games > MaxGamesPerMatchup {
		return mcp.NewToolResultErrorf("games_per_matchup must be 1-%d, got %d", MaxGamesPerMatchup, games), nil
	}

	t, err := contest.NewTournament("mcp", contest.EntriesFromAgents(names), games, seed, logger)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid tournament: %v", err), nil
	}
	res, err := t.Run()
	if err != nil {
		return mcp.NewToolResultErrorf("Tournament failed: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(TournamentResponse{Results: res})), nil
}

func splitAgents(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
