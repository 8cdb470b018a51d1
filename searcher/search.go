package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
)

// Number of nodes between two reads of the clock.
const checkInterval = 256

type Option func(s *search)

// search holds the configuration and per-call budget shared by the
// searchers.
type search struct {
	maxDepth int
	duration time.Duration
	maxNodes int
	evaluate game.Evaluate
	table    *table
	metrics  metrics.Collector

	deadline  time.Time
	nodes     int
	abortable bool
	aborted   bool
}

func WithDepth(depth int) Option {
	return func(s *search) {
		if depth > 0 {
			s.maxDepth = min(depth, MaxSearchDepth)
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *search) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithNodeLimit(nodes int) Option {
	return func(s *search) {
		if nodes > 0 {
			s.maxNodes = nodes
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return func(s *search) {
		if weights.Validate() == nil {
			s.evaluate = game.NewEvaluator(weights)
		}
	}
}

// WithEvaluationFn replaces the evaluation. Scores are clamped to
// ±game.MaxEvaluation.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = metrics.NewCollector()
	}
}

// WithTranspositionSize sets the number of table slots, zero disables the
// table. Minimax never uses one.
func WithTranspositionSize(size int) Option {
	return func(s *search) {
		s.table = newTable(size)
	}
}

func WithDifficulty(d Difficulty) Option {
	return func(s *search) {
		WithDepth(d.MaxDepth)(s)
		WithDuration(d.MaxTime)(s)
		WithNodeLimit(d.MaxNodes)(s)
		WithWeights(d.Weights)(s)
	}
}

func newSearch(options []Option) search {
	s := search{ // Default values
		maxDepth: Medium.MaxDepth,
		evaluate: game.EvaluateDefault,
		table:    newTable(DefaultTableSize),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// rootSearch searches every root move to depth and returns the chosen move
// and its value, or false when the budget ran out.
type rootSearch func(b game.Board, p game.Player, moves []game.Move, depth int) (game.Move, int, bool)

// deepen runs root at depths 1, 2, ... The depth-1 iteration always runs to
// completion so a legal move is returned whatever the budget; deeper
// iterations stop at the deadline or node limit and the last completed one
// wins.
func (s *search) deepen(board game.Board, player game.Player, root rootSearch) (game.Move, Metric, error) {
	if !player.Valid() {
		return game.Move{}, Metric{}, fmt.Errorf("invalid player %d", uint8(player))
	}
	moves := game.LegalMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, Metric{}, game.ErrNoLegalMove
	}

	s.metrics.Start(s.maxDepth, s.duration, s.maxNodes)
	s.nodes = 0
	s.aborted = false
	s.deadline = time.Time{}
	if s.duration > 0 {
		s.deadline = time.Now().Add(s.duration)
	}

	// Every placement fills a square, so searching deeper than the number of
	// empty squares cannot change the result.
	maxDepth := min(s.maxDepth, board.EmptyCount())

	best := moves[0]
	for depth := 1; depth <= maxDepth; depth++ {
		s.abortable = depth > 1
		move, score, ok := root(board, player, moves, depth)
		if !ok {
			s.metrics.SetAborted()
			log.Debug().Msgf("search aborted in depth %d after %d nodes", depth, s.nodes)
			break
		}
		best = move
		s.metrics.CompleteDepth(depth, score)
		log.Debug().Msgf("completed depth %d with move %s score %d after %d nodes", depth, move.Pos, score, s.nodes)

		if depth < maxDepth && s.overBudget(false) {
			s.metrics.SetAborted()
			break
		}
	}

	return best, s.metrics.Complete(), nil
}

// visit counts a node and reports whether the search must stop.
func (s *search) visit() bool {
	s.nodes++
	s.metrics.AddNode()
	if s.abortable && s.overBudget(true) {
		s.aborted = true
	}
	return s.aborted
}

// static scores a leaf: decided games by disc margin, others by the
// evaluation.
func (s *search) static(b game.Board, p game.Player) int {
	if !game.HasLegalMove(b, p) && !game.HasLegalMove(b, p.Opponent()) {
		return terminalScore(b, p)
	}
	return max(-game.MaxEvaluation, min(s.evaluate(b, p), game.MaxEvaluation))
}

func (s *search) overBudget(sampled bool) bool {
	if s.maxNodes > 0 && s.nodes >= s.maxNodes {
		return true
	}
	if s.deadline.IsZero() || (sampled && s.nodes%checkInterval != 0) {
		return false
	}
	return time.Now().After(s.deadline)
}
