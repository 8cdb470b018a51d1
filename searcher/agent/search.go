package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

// NewDifficultyAgent returns a search agent configured from a difficulty level.
func NewDifficultyAgent(d searcher.Difficulty, options ...searcher.Option) Agent {
	options = append([]searcher.Option{searcher.WithDifficulty(d)}, options...)
	return NewSearchAgent(searcher.NewAlphaBeta(options...))
}

func (a searchAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	if state.IsOver() {
		return game.Move{}, metrics.SearchMetric{}, game.ErrGameOver
	}
	return a.searcher.BestMove(state.Board, state.Player())
}
