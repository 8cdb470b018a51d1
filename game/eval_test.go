package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateStartIsBalanced(t *testing.T) {
	b := NewBoard()
	require.Equal(t, 0, EvaluateDefault(b, Black))
	require.Equal(t, 0, EvaluateDefault(b, White))
	require.Equal(t, 0, EvaluateDiscs(b, Black))
}

func TestEvaluateIsAntisymmetric(t *testing.T) {
	weights := []Weights{
		DefaultWeights,
		{Disc: 1},
		{Mobility: 3, Corner: 40},
		{Edge: 7, CornerAdjacent: 2},
	}

	gs := NewGameState()
	for !gs.IsOver() {
		for _, w := range weights {
			eval := NewEvaluator(w)
			require.Equal(t, eval(gs.Board, Black), -eval(gs.Board, White), "weights %+v", w)
		}
		require.Equal(t, EvaluateDiscs(gs.Board, Black), -EvaluateDiscs(gs.Board, White))
		moves := gs.LegalMoves()
		gs = gs.Play(moves[len(moves)-1])
	}
}

func TestEvaluatePrefersCorners(t *testing.T) {
	withCorner := NewBoard()
	withCorner.Place(Position{0, 0}, Black)

	withCentre := NewBoard()
	withCentre.Place(Position{2, 2}, Black)

	require.Greater(t, EvaluateDefault(withCorner, Black), EvaluateDefault(withCentre, Black))
}

func TestEvaluatePenalisesSquaresNextToEmptyCorner(t *testing.T) {
	w := Weights{CornerAdjacent: 10}
	eval := NewEvaluator(w)

	b := EmptyBoard()
	b.Place(Position{1, 1}, Black)
	require.Equal(t, -10, eval(b, Black))

	b.Place(Position{0, 0}, White)
	require.Equal(t, 0, eval(b, Black), "An occupied corner makes its neighbours safe")
}

func TestWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights.Validate())
	require.Error(t, Weights{}.Validate())
	require.Error(t, Weights{Disc: 1, Edge: -1}.Validate())

	require.Error(t, Weights{Disc: 1 << 30}.Validate(), "A single huge weight is rejected")
	require.Error(t, Weights{Disc: 1, Corner: 1_000_000}.Validate())
	require.Error(t, Weights{Disc: 1, Corner: MaxEvaluation / 4}.Validate(), "The terms add up past the bound")
	require.NoError(t, Weights{Corner: MaxEvaluation / 4}.Validate())
}

func TestEvaluateStaysWithinBound(t *testing.T) {
	weights := []Weights{
		{Disc: MaxEvaluation / 64},
		{Corner: MaxEvaluation / 4},
		{Edge: MaxEvaluation / 24},
		{CornerAdjacent: MaxEvaluation / 12},
		{Mobility: MaxEvaluation / 64},
	}

	full := EmptyBoard()
	for i := range full.cells {
		full.Place(positionOf(i), Black)
	}
	xSquares := EmptyBoard()
	for _, neighbours := range cornerNeighbours {
		for _, pos := range neighbours {
			xSquares.Place(pos, White)
		}
	}
	boards := []Board{NewBoard(), full, xSquares}

	for _, w := range weights {
		require.NoError(t, w.Validate(), "weights %+v", w)
		eval := NewEvaluator(w)
		for _, b := range boards {
			for _, p := range []Player{Black, White} {
				score := eval(b, p)
				require.LessOrEqual(t, score, MaxEvaluation, "weights %+v", w)
				require.GreaterOrEqual(t, score, -MaxEvaluation, "weights %+v", w)
			}
		}
	}
}
