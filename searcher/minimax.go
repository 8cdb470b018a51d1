package searcher

import (
	"othello/game"
)

// Minimax searches the full tree without pruning or move ordering. It takes
// the same options as AlphaBeta and returns the same move and value at every
// depth, only slower; it is the baseline in experiments.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{search: newSearch(options)}
	m.table = nil
	return m
}

func (s *Minimax) BestMove(board game.Board, player game.Player) (game.Move, Metric, error) {
	return s.deepen(board, player, s.searchRoot)
}

// searchRoot keeps the first move in generation order among the best values.
func (s *Minimax) searchRoot(b game.Board, p game.Player, moves []game.Move, depth int) (game.Move, int, bool) {
	bestIndex, bestScore := -1, 0
	for i, m := range moves {
		score := -s.minimax(game.Apply(b, m), p.Opponent(), depth-1)
		if s.aborted {
			return game.Move{}, 0, false
		}
		if bestIndex < 0 || score > bestScore {
			bestIndex, bestScore = i, score
		}
	}
	return moves[bestIndex], bestScore, true
}

func (s *Minimax) minimax(b game.Board, p game.Player, depth int) int {
	if s.visit() {
		return 0
	}
	if depth <= 0 {
		return s.static(b, p)
	}

	moves := game.LegalMoves(b, p)
	if len(moves) == 0 {
		if !game.HasLegalMove(b, p.Opponent()) {
			return terminalScore(b, p)
		}
		return -s.minimax(b, p.Opponent(), depth)
	}

	best := -infinity
	for _, m := range moves {
		best = max(best, -s.minimax(game.Apply(b, m), p.Opponent(), depth-1))
		if s.aborted {
			return 0
		}
	}
	return best
}

var (
	_ Searcher = (*AlphaBeta)(nil)
	_ Searcher = (*Minimax)(nil)
)
