package experiments

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
)

// NewSelfPlay pairs each config against itself for the same playing strength
// and similar game length, so the move records measure search throughput.
// Tallies then count results from Black's side.
func NewSelfPlay(name string, configs []metrics.AgentConfig, games int, outDir string) Experiment {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return Experiment{Name: name, Configs: configs, MatchUps: matchUps, Games: games, OutDir: outDir}
}

// Throughput is the search rate of one agent over a set of move records.
type Throughput struct {
	Agent       int // AgentConfig.ID
	Searches    int
	Nodes       int
	Duration    time.Duration
	NodesPerSec float64
}

// MeasureThroughput sums the searched nodes per agent. Moves of random
// agents report no nodes and are skipped.
func MeasureThroughput(report Report) []Throughput {
	byGame := make(map[int]metrics.GameRecord, len(report.GameRecords))
	for _, record := range report.GameRecords {
		byGame[record.ID] = record
	}

	index := map[int]int{}
	out := []Throughput{}
	for _, record := range report.MoveRecords {
		if record.Nodes == 0 {
			continue
		}
		gameRecord := byGame[record.Game]
		id := gameRecord.White
		if record.Player == game.Black {
			id = gameRecord.Black
		}
		i, ok := index[id]
		if !ok {
			i = len(out)
			index[id] = i
			out = append(out, Throughput{Agent: id})
		}
		out[i].Searches++
		out[i].Nodes += record.Nodes
		out[i].Duration += record.SearchMetric.Duration
	}
	for i := range out {
		if out[i].Duration > 0 {
			out[i].NodesPerSec = float64(out[i].Nodes) / out[i].Duration.Seconds()
		}
	}
	return out
}
