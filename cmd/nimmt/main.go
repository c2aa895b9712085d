package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/peterkuimelis/sixnimmt/internal/agent"
	"github.com/peterkuimelis/sixnimmt/internal/contest"
	"github.com/peterkuimelis/sixnimmt/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	cmd := os.Args[1]
	switch cmd {
	case "game":
		err = runGame(os.Args[2:])
	case "tournament":
		err = runTournament(os.Args[2:])
	case "agents":
		fmt.Println("Agents:       " + strings.Join(agent.Names(), ", "))
		fmt.Println("Row policies: " + strings.Join(agent.RowPolicyNames(), ", "))
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  nimmt game [--agents A,B,...] [--seed N] [--quiet]")
	fmt.Println("  nimmt tournament [--config FILE | --agents A,B,...] [--games N] [--seed N]")
	fmt.Println("  nimmt agents")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  game        Play a single game and print the trace and final ranking")
	fmt.Println("  tournament  Run a round-robin tournament and print the standings")
	fmt.Println("  agents      List registered strategies and row policies")
}

// seedOrNow returns seed, or a clock-derived seed when none was given.
func seedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runGame(args []string) error {
	fs := flag.NewFlagSet("game", flag.ExitOnError)
	agents := fs.String("agents", "RandomAgent,LowestCardFirstAgent,HighestCardFirstAgent,BullsHeadsFirstAgent", "comma-separated agents, one per seat")
	seed := fs.Int64("seed", 0, "game seed (0 = derive from the clock)")
	quiet := fs.Bool("quiet", false, "skip the round-by-round trace")
	fs.Parse(args)

	s := seedOrNow(*seed)
	res, err := contest.RunSingleGame(contest.EntriesFromAgents(splitList(*agents)), s, contest.GameOptions{
		Verbose: !*quiet,
		Out:     os.Stdout,
	})
	if err != nil {
		return err
	}
	contest.FormatGameResult(os.Stdout, res)
	fmt.Printf("\nseed: %d\n", s)
	return nil
}

func runTournament(args []string) error {
	fs := flag.NewFlagSet("tournament", flag.ExitOnError)
	configFile := fs.String("config", "", "path to a contest YAML file")
	agents := fs.String("agents", strings.Join(agent.Names(), ","), "comma-separated agents (ignored with --config)")
	games := fs.Int("games", contest.DefaultGamesPerMatchup, "games per matchup (ignored with --config)")
	seed := fs.Int64("seed", 0, "tournament seed (0 = derive from the clock; overrides the file's seed)")
	debug := fs.Bool("debug", false, "debug logging")
	fs.Parse(args)

	logger, err := logging.New(*debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	cf := &contest.ContestFile{
		Name:            "cli",
		GamesPerMatchup: *games,
		Players:         contest.EntriesFromAgents(splitList(*agents)),
	}
	if *configFile != "" {
		cf, err = contest.ParseContestFile(*configFile)
		if err != nil {
			return fmt.Errorf("load contest: %w", err)
		}
	}
	if *seed != 0 || cf.Seed == 0 {
		cf.Seed = seedOrNow(*seed)
	}

	t, err := cf.Tournament(logger)
	if err != nil {
		return err
	}
	logger.Debug("tournament created", zap.String("id", t.ID))

	res, err := t.Run()
	if err != nil {
		return err
	}
	contest.FormatResults(os.Stdout, res)
	return nil
}
