package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashDistinguishesPlayerToMove(t *testing.T) {
	b := NewBoard()
	require.NotEqual(t, Hash(b, Black), Hash(b, White))
	require.Equal(t, Hash(b, Black), NewGameState().Hash())
}

func TestHashIsStable(t *testing.T) {
	// Same seed, same keys.
	require.Equal(t, *zobrist, *newZobrist(zobristSeed))
	require.NotEqual(t, *zobrist, *newZobrist(zobristSeed+1))
}

func TestHashFollowsLine(t *testing.T) {
	play := func(line ...Position) StateHash {
		gs := NewGameState()
		for _, pos := range line {
			_, err := gs.Apply(pos)
			require.NoError(t, err)
		}
		return gs.Hash()
	}

	line := []Position{{2, 3}, {2, 2}, {3, 2}}
	require.Equal(t, play(line...), play(line...))
	require.NotEqual(t, play(line[:2]...), play(line...))
}

func TestHashAfterPass(t *testing.T) {
	b := mustBoard(t,
		"XO......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"XO......",
	)
	gs, err := NewGameStateFrom(b, Black)
	require.NoError(t, err)

	_, err = gs.Apply(Position{0, 2})
	require.NoError(t, err)
	require.True(t, gs.Passed)
	require.Equal(t, Hash(gs.Board, Black), gs.Hash())
}
