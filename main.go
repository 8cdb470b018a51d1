package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"othello/config"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/meta"
	"othello/searcher"
	"othello/utils"
)

func main() {
	games := flag.Int("games", meta.GAMES_PER_MATCHUP, "Number of games per match-up")
	agentA := flag.String("a", meta.DEFAULT_DIFFICULTY, "First agent: a difficulty name, \"minimax-\" and a difficulty name, or \"random\"")
	agentB := flag.String("b", "random", "Second agent: a difficulty name, \"minimax-\" and a difficulty name, or \"random\"")
	ladder := flag.Bool("ladder", false, "Play every difficulty against the next one instead of a against b")
	presetsPath := flag.String("presets", "", "YAML file with difficulty presets")
	out := flag.String("out", "experiments", "Directory for CSV records, empty to skip writing")
	seed := flag.Uint64("seed", meta.DEFAULT_SEED, "Seed of random agents")
	flag.Parse()

	if err := config.InitLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log configuration: %v\n", err)
		os.Exit(2)
	}

	presets, err := config.LoadPresets(*presetsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load presets")
	}

	var x experiments.Experiment
	if *ladder {
		configs := utils.Map(presets, func(d searcher.Difficulty) metrics.AgentConfig {
			return experiments.ConfigFromDifficulty(utils.FindIndex(presets, d)+1, d)
		})
		x = experiments.NewLadder("ladder", configs, *games, *out)
	} else {
		a, err := agentConfig(1, *agentA, presets, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid agent a")
		}
		b, err := agentConfig(2, *agentB, presets, *seed+1)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid agent b")
		}
		x = experiments.NewLadder(fmt.Sprintf("%s_vs_%s", a.Name, b.Name), []metrics.AgentConfig{a, b}, *games, *out)
	}

	report, err := x.Run()
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", x.Name)
	}
	for _, tally := range report.Tallies {
		fmt.Println(tally)
	}
	for _, t := range experiments.MeasureThroughput(report) {
		fmt.Printf("agent %d: %d searches, %.0f nodes/s\n", t.Agent, t.Searches, t.NodesPerSec)
	}
}

func agentConfig(id int, name string, presets []searcher.Difficulty, seed uint64) (metrics.AgentConfig, error) {
	if name == "random" {
		return experiments.RandomConfig(id, seed), nil
	}
	difficulty, unpruned := strings.CutPrefix(name, "minimax-")
	d, err := config.FindPreset(presets, difficulty)
	if err != nil {
		return metrics.AgentConfig{}, err
	}
	if unpruned {
		return experiments.MinimaxConfig(id, d), nil
	}
	return experiments.ConfigFromDifficulty(id, d), nil
}
