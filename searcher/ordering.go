package searcher

import (
	"golang.org/x/exp/slices"

	"othello/game"
)

// squareWeights ranks squares for move ordering: corners first, squares that
// give a corner away last.
var squareWeights = [game.Size][game.Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

const hintBonus = 1 << 20

func priority(m game.Move, hint game.Position, hinted bool) int {
	p := squareWeights[m.Pos.Row][m.Pos.Col]*8 + len(m.Flips)
	if hinted && m.Pos == hint {
		p += hintBonus
	}
	return p
}

// order sorts moves in place, best candidates first. The sort is stable so
// equal priorities keep generation order.
func (s *AlphaBeta) order(moves []game.Move, hash game.StateHash) {
	hint, hinted := s.table.lookup(hash)
	if hinted {
		s.metrics.AddTableHit()
	}
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		return priority(b, hint, hinted) - priority(a, hint, hinted)
	})
}

// rootOrder returns the indices of moves in search order, leaving moves
// itself in generation order for the tie-break.
func (s *AlphaBeta) rootOrder(moves []game.Move, hash game.StateHash) []int {
	hint, hinted := s.table.lookup(hash)
	if hinted {
		s.metrics.AddTableHit()
	}
	indices := make([]int, len(moves))
	for i := range indices {
		indices[i] = i
	}
	slices.SortStableFunc(indices, func(a, b int) int {
		return priority(moves[b], hint, hinted) - priority(moves[a], hint, hinted)
	})
	return indices
}
