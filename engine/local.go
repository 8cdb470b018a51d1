package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
)

// Result is the outcome of one self-play game. Finished is false only when
// the ply guard stopped the game.
type Result struct {
	game.Result
	Finished bool
}

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	State  *game.GameState
	Agents map[game.Player]agent.Agent
}

// NewLocalEngine sets up a game from the standard opening between black and
// white.
func NewLocalEngine(black, white agent.Agent) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	return &LocalEngine{
		State: game.NewGameState(),
		Agents: map[game.Player]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run() (Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.State.Player())

	for ply := 1; !e.State.IsOver() && ply <= meta.MAX_PLIES; ply++ {
		player := e.State.Player()

		move, searchMetric, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", player, err)
		}
		if _, err := e.State.Apply(move.Pos); err != nil {
			return Result{}, gameMetric, moveMetrics, fmt.Errorf("%s played %s: %w", player, move.Pos, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         ply,
			Player:       player,
			Move:         move.Pos,
			SearchMetric: searchMetric,
		})
		if e.State.Passed {
			log.Debug().Msgf("%s has no legal move and passes", player.Opponent())
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.MoveCount
	gameMetric.Passes = e.State.Passes

	result, finished := e.State.Result()
	if !finished {
		log.Warn().Msgf("stopped after %d plies without a result", meta.MAX_PLIES)
		result = game.ScoreResult(e.State.Board)
	}
	gameMetric.Result = result
	return Result{Result: result, Finished: finished}, gameMetric, moveMetrics, nil
}
