package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

// Tally counts the results of one match-up from the first agent's side.
type Tally struct {
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	Wins   int
	Losses int
	Draws  int
}

func (t Tally) String() string {
	return fmt.Sprintf("agent %d vs agent %d: %d-%d-%d", t.Agent1, t.Agent2, t.Wins, t.Losses, t.Draws)
}

// Experiment plays every match-up a number of times and stores the records
// as CSV under OutDir. An empty OutDir keeps the records in memory only.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int // Per match up
	OutDir   string
}

// Report is what an experiment run produced.
type Report struct {
	Tallies     []Tally
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Dir         string
}

// ConfigFromDifficulty describes a search agent playing at d.
func ConfigFromDifficulty(id int, d searcher.Difficulty) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:       id,
		Name:     d.Name,
		MaxDepth: d.MaxDepth,
		MaxTime:  d.MaxTime,
		MaxNodes: d.MaxNodes,
		Weights:  d.Weights,
	}
}

// MinimaxConfig describes an unpruned minimax agent with the budgets of d.
func MinimaxConfig(id int, d searcher.Difficulty) metrics.AgentConfig {
	config := ConfigFromDifficulty(id, d)
	config.Name = "minimax-" + d.Name
	config.Minimax = true
	return config
}

// RandomConfig describes a random baseline agent.
func RandomConfig(id int, seed uint64) metrics.AgentConfig {
	return metrics.AgentConfig{ID: id, Name: "random", Random: true, Seed: seed}
}

// NewLadder pairs each config against the next one in the list.
func NewLadder(name string, configs []metrics.AgentConfig, games int, outDir string) Experiment {
	matchUps := [][2]metrics.AgentConfig{}
	for i := 0; i+1 < len(configs); i++ {
		matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[i+1]})
	}
	return Experiment{Name: name, Configs: configs, MatchUps: matchUps, Games: games, OutDir: outDir}
}

// Run plays the experiment. The agents swap colours every game.
func (x Experiment) Run() (Report, error) {
	count := 0
	report := Report{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		config1, config2 := matchUp[0], matchUp[1]
		tally := Tally{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%s and agent2=%s...", mi+1, len(x.MatchUps), config1.Name, config2.Name)

		for i := 0; i < x.Games; i++ {
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			result, gameMetric, moveMetrics, err := runGame(black, white, i)
			if err != nil {
				return report, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			report.GameRecords = append(report.GameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				report.MoveRecords = append(report.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case result.Draw:
				tally.Draws++
			case (result.Winner == game.Black) == (black.ID == config1.ID):
				tally.Wins++
			default:
				tally.Losses++
			}

			log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(x.MatchUps), i+1, result.Result)
		}
		report.Tallies = append(report.Tallies, tally)
		log.Info().Msgf("completed matchup %d of %d, %s", mi+1, len(x.MatchUps), tally)
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if x.OutDir == "" {
		return report, nil
	}
	dir, err := x.store(report)
	if err != nil {
		return report, err
	}
	report.Dir = dir
	return report, nil
}

func (x Experiment) store(report Report) (string, error) {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(x.Configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(report.GameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(report.MoveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents
func runGame(black, white metrics.AgentConfig, round int) (engine.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.NewLocalEngine(createAgent(black, round), createAgent(white, round))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, round int) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed + uint64(round))
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithDepth(config.MaxDepth))
	}
	if config.MaxTime > 0 {
		options = append(options, searcher.WithDuration(config.MaxTime))
	}
	if config.MaxNodes > 0 {
		options = append(options, searcher.WithNodeLimit(config.MaxNodes))
	}
	if config.Weights != (game.Weights{}) {
		options = append(options, searcher.WithWeights(config.Weights))
	}
	if config.Minimax {
		return agent.NewSearchAgent(searcher.NewMinimax(options...))
	}
	return agent.NewSearchAgent(searcher.NewAlphaBeta(options...))
}
