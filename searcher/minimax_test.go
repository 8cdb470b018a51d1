package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
)

/**
Tests the unpruned minimax searcher:
- node counts of the full tree from the opening
- tie-break on the symmetric opening
- budgets and errors shared with alpha-beta
*/

func TestMinimax(t *testing.T) {
	t.Run("visits the whole tree", func(t *testing.T) {
		s := NewMinimax(WithDepth(2), WithMetrics())

		move, metric, err := s.BestMove(game.NewBoard(), game.Black)

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 2, Col: 3}, move.Pos)
		require.Equal(t, 2, metric.Depth)
		require.Equal(t, 4+(4+4*3), metric.Nodes, "Depth 1 sees the four openings, depth 2 also their three replies each")
		require.Zero(t, metric.Cutoffs)
		require.Zero(t, metric.TableHits)
	})

	t.Run("ignores the transposition table", func(t *testing.T) {
		s := NewMinimax(WithTranspositionSize(1024))
		require.Nil(t, s.table)
	})

	t.Run("node limit", func(t *testing.T) {
		s := NewMinimax(WithDepth(MaxSearchDepth), WithNodeLimit(100), WithMetrics())
		gs := positions(t, 12)[0]

		move, metric, err := s.BestMove(gs.Board, gs.Player())

		require.NoError(t, err)
		require.True(t, game.IsLegal(gs.Board, gs.Player(), move.Pos))
		require.True(t, metric.Aborted)
		require.GreaterOrEqual(t, metric.Depth, 1)
	})

	t.Run("no legal move", func(t *testing.T) {
		b := mustBoard(t,
			"OX......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		_, _, err := NewMinimax().BestMove(b, game.Black)
		require.ErrorIs(t, err, game.ErrNoLegalMove)
	})
}
