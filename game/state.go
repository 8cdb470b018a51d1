package game

import (
	"fmt"
)

type Status int

const (
	InProgress Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "in_progress"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of a finished game. Winner is zero on a draw.
type Result struct {
	Winner Player `json:"winner,omitempty"`
	Draw   bool   `json:"draw"`
	Black  int    `json:"black"`
	White  int    `json:"white"`
}

func (r Result) String() string {
	if r.Draw {
		return fmt.Sprintf("draw %d-%d", r.Black, r.White)
	}
	return fmt.Sprintf("%s wins %d-%d", r.Winner, r.Black, r.White)
}

// ScoreResult compares disc counts: more discs wins, equal is a draw.
func ScoreResult(b Board) Result {
	black, white := b.Counts()
	r := Result{Black: black, White: white}
	switch {
	case black > white:
		r.Winner = Black
	case white > black:
		r.Winner = White
	default:
		r.Draw = true
	}
	return r
}

// GameState is the authoritative state of one game. Apply is the only
// mutating operation; everything else is a read.
type GameState struct {
	Board     Board  // Current position
	ToMove    Player // Player to move; the last mover once the game is over
	MoveCount int    // Placements made so far
	Passes    int    // Forced passes so far
	Status    Status // InProgress or GameOver
	Passed    bool   // The last move forced the opponent to pass
	LastMove  *Move  // Last placement, nil before the first move
	hash      StateHash
}

// NewGameState starts a standard game with Black to move.
func NewGameState() *GameState {
	gs, err := NewGameStateFrom(NewBoard(), Black)
	if err != nil {
		panic(err)
	}
	return gs
}

// NewGameStateFrom builds a state for an arbitrary position. If toMove has no
// legal move the forced pass (or game over) is applied immediately.
func NewGameStateFrom(b Board, toMove Player) (*GameState, error) {
	if !toMove.Valid() {
		return nil, fmt.Errorf("invalid player to move: %d", uint8(toMove))
	}
	gs := &GameState{Board: b, ToMove: toMove}
	if !HasLegalMove(b, toMove) {
		if HasLegalMove(b, toMove.Opponent()) {
			gs.ToMove = toMove.Opponent()
			gs.Passed = true
			gs.Passes++
		} else {
			gs.Status = GameOver
		}
	}
	gs.hash = Hash(gs.Board, gs.ToMove)
	return gs, nil
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	if gs.LastMove != nil {
		last := *gs.LastMove
		last.Flips = append([]Position(nil), gs.LastMove.Flips...)
		c.LastMove = &last
	}
	return &c
}

func (gs *GameState) Player() Player {
	return gs.ToMove
}

func (gs *GameState) IsOver() bool {
	return gs.Status == GameOver
}

func (gs *GameState) Hash() StateHash {
	return gs.hash
}

// LegalMoves returns the moves available to the player to move; none once the
// game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsOver() {
		return nil
	}
	return LegalMoves(gs.Board, gs.ToMove)
}

// Result returns the final result, or false while the game is in progress.
func (gs *GameState) Result() (Result, bool) {
	if !gs.IsOver() {
		return Result{}, false
	}
	return ScoreResult(gs.Board), true
}

// Apply plays the player to move at pos. On error the state is unchanged.
func (gs *GameState) Apply(pos Position) (Move, error) {
	if gs.IsOver() {
		return Move{}, ErrGameOver
	}
	board, move, err := ApplyMove(gs.Board, gs.ToMove, pos)
	if err != nil {
		return Move{}, err
	}
	gs.commit(board, move)
	return move, nil
}

// Play returns the state after move m, leaving gs untouched. m must be one of
// gs.LegalMoves().
func (gs *GameState) Play(m Move) *GameState {
	if gs.IsOver() || m.Player != gs.ToMove {
		panic(fmt.Sprintf("play %v: not %s's turn", m, m.Player))
	}
	next := gs.Copy()
	next.commit(Apply(gs.Board, m), m)
	return next
}

func (gs *GameState) commit(board Board, move Move) {
	mover := move.Player
	gs.Board = board
	gs.MoveCount++
	gs.LastMove = &move
	gs.Passed = false

	switch {
	case HasLegalMove(board, mover.Opponent()):
		gs.ToMove = mover.Opponent()
	case HasLegalMove(board, mover):
		gs.ToMove = mover
		gs.Passed = true
		gs.Passes++
	default:
		gs.ToMove = mover
		gs.Status = GameOver
	}
	gs.hash = updateHash(gs.hash, move, gs.ToMove != mover)
}
