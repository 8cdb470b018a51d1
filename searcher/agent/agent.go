package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the move to play in state and search metrics (if collected)
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
}
