package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxSearchDepth caps the nominal depth of any search. Forced passes do not
// consume depth, so the recursion is at most twice as deep.
const MaxSearchDepth = 32

// WinScore dominates every static evaluation so decided games always rank
// above or below undecided ones.
const WinScore = game.MaxEvaluation + 1

const infinity = 1 << 30

type Metric = metrics.SearchMetric

// Searcher picks a move for player on board.
type Searcher interface {
	BestMove(board game.Board, player game.Player) (game.Move, Metric, error)
}

// terminalScore scores a finished game from p's view: a win is worth more the
// larger the disc margin.
func terminalScore(b game.Board, p game.Player) int {
	diff := b.Score(p) - b.Score(p.Opponent())
	switch {
	case diff > 0:
		return WinScore + diff
	case diff < 0:
		return -WinScore + diff
	default:
		return 0
	}
}
