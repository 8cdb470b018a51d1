package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func TestDifficulties(t *testing.T) {
	depths := []int{1, 2, 4, 6, 8}
	require.Len(t, Difficulties, len(depths))
	for i, d := range Difficulties {
		require.NoError(t, d.Validate(), d.Name)
		require.Equal(t, depths[i], d.MaxDepth, d.Name)
	}
}

func TestDifficultyByName(t *testing.T) {
	d, err := DifficultyByName("HARD")
	require.NoError(t, err)
	require.Equal(t, Hard, d)

	_, err = DifficultyByName("grandmaster")
	require.Error(t, err)
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name       string
		difficulty Difficulty
	}{
		{"missing name", Difficulty{MaxDepth: 2, Weights: game.DefaultWeights}},
		{"zero depth", Difficulty{Name: "x", Weights: game.DefaultWeights}},
		{"depth above cap", Difficulty{Name: "x", MaxDepth: MaxSearchDepth + 1, Weights: game.DefaultWeights}},
		{"negative time", Difficulty{Name: "x", MaxDepth: 2, MaxTime: -time.Second, Weights: game.DefaultWeights}},
		{"negative nodes", Difficulty{Name: "x", MaxDepth: 2, MaxNodes: -1, Weights: game.DefaultWeights}},
		{"zero weights", Difficulty{Name: "x", MaxDepth: 2}},
		{"weights outscore a win", Difficulty{Name: "heavy", MaxDepth: 1, Weights: game.Weights{Disc: 1 << 30}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.difficulty.Validate())
		})
	}
}

func TestWithDifficulty(t *testing.T) {
	s := NewAlphaBeta(WithDifficulty(Expert))

	require.Equal(t, Expert.MaxDepth, s.maxDepth)
	require.Equal(t, Expert.MaxTime, s.duration)
	require.Equal(t, Expert.MaxNodes, s.maxNodes)

	s = NewAlphaBeta(WithDepth(MaxSearchDepth * 2))
	require.Equal(t, MaxSearchDepth, s.maxDepth, "Depth should be capped")
}
