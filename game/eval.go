package game

import "fmt"

// Weights are the terms of the static evaluation. Scores are integers so that
// identical positions always evaluate identically.
type Weights struct {
	Disc           int `yaml:"disc" json:"disc"`
	Mobility       int `yaml:"mobility" json:"mobility"`
	Corner         int `yaml:"corner" json:"corner"`
	Edge           int `yaml:"edge" json:"edge"`
	CornerAdjacent int `yaml:"corner_adjacent" json:"corner_adjacent"`
}

// DefaultWeights favour corners, then mobility, then edges, and penalise
// squares next to an empty corner.
var DefaultWeights = Weights{
	Disc:           1,
	Mobility:       5,
	Corner:         25,
	Edge:           3,
	CornerAdjacent: 12,
}

// MaxEvaluation bounds the magnitude of any evaluation from valid weights.
// Searchers score decided games beyond it.
const MaxEvaluation = 999_999

func (w Weights) Validate() error {
	if w.Disc < 0 || w.Mobility < 0 || w.Corner < 0 || w.Edge < 0 || w.CornerAdjacent < 0 {
		return fmt.Errorf("evaluation weights must be >= 0: %+v", w)
	}
	if w == (Weights{}) {
		return fmt.Errorf("evaluation weights must not all be zero")
	}
	for _, weight := range []int{w.Disc, w.Mobility, w.Corner, w.Edge, w.CornerAdjacent} {
		if weight > MaxEvaluation {
			return fmt.Errorf("evaluation weight %d above %d", weight, MaxEvaluation)
		}
	}
	if bound := w.bound(); bound > MaxEvaluation {
		return fmt.Errorf("evaluation weights %+v can score %d, above %d", w, bound, MaxEvaluation)
	}
	return nil
}

// bound is the largest |evaluation| the weights can produce: every disc,
// corner, edge and X/C-square differential at its extreme and a mobility
// differential of at most one move per square.
func (w Weights) bound() int {
	return Size*Size*w.Disc + 4*w.Corner + 24*w.Edge + 12*w.CornerAdjacent + Size*Size*w.Mobility
}

var corners = [4]Position{{0, 0}, {0, 7}, {7, 0}, {7, 7}}

// cornerNeighbours lists, per corner, the X-square and the two C-squares.
var cornerNeighbours = [4][3]Position{
	{{1, 1}, {0, 1}, {1, 0}},
	{{1, 6}, {0, 6}, {1, 7}},
	{{6, 1}, {7, 1}, {6, 0}},
	{{6, 6}, {7, 6}, {6, 7}},
}

func isCorner(pos Position) bool {
	return (pos.Row == 0 || pos.Row == Size-1) && (pos.Col == 0 || pos.Col == Size-1)
}

func isEdge(pos Position) bool {
	return pos.Row == 0 || pos.Row == Size-1 || pos.Col == 0 || pos.Col == Size-1
}

// NewEvaluator returns the weighted evaluation. The score is from p's point of
// view and antisymmetric: e(b, p) == -e(b, p.Opponent()).
func NewEvaluator(w Weights) Evaluate {
	return func(b Board, p Player) int {
		return w.evaluate(b, p)
	}
}

// EvaluateDefault is the evaluator built from DefaultWeights.
var EvaluateDefault = NewEvaluator(DefaultWeights)

func (w Weights) evaluate(b Board, p Player) int {
	own, opp := Disc(p), Disc(p.Opponent())

	discs, corner, edge := 0, 0, 0
	for i, c := range b.cells {
		sign := 0
		switch c {
		case own:
			sign = 1
		case opp:
			sign = -1
		default:
			continue
		}
		discs += sign
		pos := positionOf(i)
		if isCorner(pos) {
			corner += sign
		} else if isEdge(pos) {
			edge += sign
		}
	}

	adjacent := 0
	for i, cornerPos := range corners {
		if b.cells[cornerPos.Index()] != Empty {
			continue
		}
		for _, pos := range cornerNeighbours[i] {
			switch b.cells[pos.Index()] {
			case own:
				adjacent++
			case opp:
				adjacent--
			}
		}
	}

	score := w.Disc*discs + w.Corner*corner + w.Edge*edge - w.CornerAdjacent*adjacent
	if w.Mobility != 0 {
		score += w.Mobility * (Mobility(b, p) - Mobility(b, p.Opponent()))
	}
	return score
}

// EvaluateDiscs scores only the disc differential.
func EvaluateDiscs(b Board, p Player) int {
	return b.Score(p) - b.Score(p.Opponent())
}
