package gamemaster

import (
	"othello/game"
	"othello/utils"
)

// StateView is a copy of the session state for the presentation layer.
// Mutating it has no effect on the session.
type StateView struct {
	ID         string          `json:"id"`
	Board      game.Board      `json:"board"`
	ToMove     game.Player     `json:"to_move"`
	MoveCount  int             `json:"move_count"`
	Black      int             `json:"black"`
	White      int             `json:"white"`
	LegalMoves []game.Position `json:"legal_moves"`
	Passed     bool            `json:"passed"`
	Over       bool            `json:"over"`
	Result     *game.Result    `json:"result,omitempty"`
	LastMove   *game.Move      `json:"last_move,omitempty"`
}

func newStateView(id string, gs *game.GameState) StateView {
	black, white := gs.Board.Counts()
	view := StateView{
		ID:        id,
		Board:     gs.Board,
		ToMove:    gs.Player(),
		MoveCount: gs.MoveCount,
		Black:     black,
		White:     white,
		LegalMoves: utils.Map(gs.LegalMoves(), func(m game.Move) game.Position {
			return m.Pos
		}),
		Passed: gs.Passed,
		Over:   gs.IsOver(),
	}
	if result, over := gs.Result(); over {
		view.Result = &result
	}
	if gs.LastMove != nil {
		last := *gs.LastMove
		last.Flips = append([]game.Position(nil), gs.LastMove.Flips...)
		view.LastMove = &last
	}
	return view
}
