package searcher

import (
	"othello/game"
)

// AlphaBeta is an iterative deepening negamax searcher. It keeps a
// transposition table between calls and must not be shared between
// goroutines.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{search: newSearch(options)}
}

// BestMove searches board for player and returns the chosen move. The metric
// is zero unless WithMetrics was given.
func (s *AlphaBeta) BestMove(board game.Board, player game.Player) (game.Move, Metric, error) {
	return s.deepen(board, player, s.searchRoot)
}

// searchRoot gives each root move either its exact value or a proof that it
// is strictly worse than the best so far, then picks the first move in
// generation order among the best values. The search order therefore never
// changes which move is returned.
func (s *AlphaBeta) searchRoot(b game.Board, p game.Player, moves []game.Move, depth int) (game.Move, int, bool) {
	hash := game.Hash(b, p)
	bestIndex, bestScore := -1, -infinity
	for _, i := range s.rootOrder(moves, hash) {
		alpha := -infinity
		if bestIndex >= 0 {
			alpha = bestScore - 1
		}
		score := -s.negamax(game.Apply(b, moves[i]), p.Opponent(), depth-1, -infinity, -alpha)
		if s.aborted {
			return game.Move{}, 0, false
		}
		if bestIndex < 0 || score > bestScore || (score == bestScore && i < bestIndex) {
			bestIndex, bestScore = i, score
		}
	}
	s.table.store(hash, moves[bestIndex].Pos)
	return moves[bestIndex], bestScore, true
}

// negamax returns the fail-soft alpha-beta value of b for p. A blocked player
// passes at the same depth.
func (s *AlphaBeta) negamax(b game.Board, p game.Player, depth, alpha, beta int) int {
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
		return -s.negamax(b, p.Opponent(), depth, -beta, -alpha)
	}

	hash := game.Hash(b, p)
	s.order(moves, hash)

	best := -infinity
	var bestPos game.Position
	for i, m := range moves {
		score := -s.negamax(game.Apply(b, m), p.Opponent(), depth-1, -beta, -alpha)
		if s.aborted {
			return 0
		}
		if i == 0 || score > best {
			best, bestPos = score, m.Pos
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	s.table.store(hash, bestPos)
	return best
}
