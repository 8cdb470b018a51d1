package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"othello/game"
	"othello/searcher"
)

func playout(t *testing.T, black, white Agent) *game.GameState {
	t.Helper()
	gs := game.NewGameState()
	agents := map[game.Player]Agent{game.Black: black, game.White: white}
	for !gs.IsOver() {
		move, _, err := agents[gs.Player()].FindMove(gs)
		require.NoError(t, err)
		_, err = gs.Apply(move.Pos)
		require.NoError(t, err, "Agents should only return legal moves")
	}
	return gs
}

func TestRandomAgent(t *testing.T) {
	t.Run("same seed replays the same game", func(t *testing.T) {
		first := playout(t, NewRandomAgent(7), NewRandomAgent(8))
		second := playout(t, NewRandomAgent(7), NewRandomAgent(8))
		require.Equal(t, first.Board, second.Board)
		require.Equal(t, first.MoveCount, second.MoveCount)
	})

	t.Run("finished game", func(t *testing.T) {
		gs := playout(t, NewRandomAgent(1), NewRandomAgent(2))
		_, _, err := NewRandomAgent(1).FindMove(gs)
		require.ErrorIs(t, err, game.ErrGameOver)
	})
}

func TestSearchAgent(t *testing.T) {
	t.Run("plays the searcher's move", func(t *testing.T) {
		s := searcher.NewAlphaBeta(searcher.WithDepth(3))
		gs := game.NewGameState()

		want, _, err := s.BestMove(gs.Board, gs.Player())
		require.NoError(t, err)
		got, _, err := NewSearchAgent(s).FindMove(gs)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("difficulty agent reports metrics", func(t *testing.T) {
		a := NewDifficultyAgent(searcher.Easy, searcher.WithMetrics())
		_, metric, err := a.FindMove(game.NewGameState())
		require.NoError(t, err)
		require.Equal(t, searcher.Easy.MaxDepth, metric.MaxDepth)
		require.Positive(t, metric.Nodes)
	})

	t.Run("beats a random player", func(t *testing.T) {
		wins := 0
		for seed := uint64(1); seed <= 3; seed++ {
			gs := playout(t, NewDifficultyAgent(searcher.Medium), NewRandomAgent(seed))
			result, over := gs.Result()
			require.True(t, over)
			if result.Winner == game.Black {
				wins++
			}
		}
		require.GreaterOrEqual(t, wins, 2)
	})
}
