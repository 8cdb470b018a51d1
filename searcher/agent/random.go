package agent

import (
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves. The same seed replays the same game against a deterministic opponent.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, game.ErrGameOver
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
