package gamemaster

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"othello/game"
	"othello/searcher"
)

// ErrWrongTurn is returned when a call plays for the side the session does
// not let it play.
var ErrWrongTurn = errors.New("not this side's turn")

type SessionOption func(s *Session)

// WithHuman reserves player for Play and the other side for PlayAI. Without
// it either call may move for whoever is to move.
func WithHuman(player game.Player) SessionOption {
	return func(s *Session) {
		s.human = player
	}
}

// WithPosition starts every new game of the session from board with toMove
// to move instead of the standard opening.
func WithPosition(board game.Board, toMove game.Player) SessionOption {
	return func(s *Session) {
		s.startBoard = board
		s.startPlayer = toMove
	}
}

// WithSearchOptions adds options to every searcher the session creates,
// after the difficulty's own settings.
func WithSearchOptions(options ...searcher.Option) SessionOption {
	return func(s *Session) {
		s.searchOptions = append(s.searchOptions, options...)
	}
}

// Update is one placement of the current game.
type Update struct {
	Move game.Move      `json:"move"`
	Hash game.StateHash `json:"hash"`
}

// Session is the boundary between a presentation layer and the engine. It
// owns one game at a time and every call either fully applies or leaves the
// game untouched. A Session is not safe for concurrent use.
type Session struct {
	id            string
	state         *game.GameState
	history       []Update
	human         game.Player
	startBoard    game.Board
	startPlayer   game.Player
	searchOptions []searcher.Option
	searchers     map[searcher.Difficulty]*searcher.AlphaBeta
}

func NewSession(options ...SessionOption) (*Session, error) {
	s := &Session{ // Default values
		startBoard:  game.NewBoard(),
		startPlayer: game.Black,
		searchers:   make(map[searcher.Difficulty]*searcher.AlphaBeta),
	}
	for _, option := range options {
		option(s)
	}
	if s.human != 0 && !s.human.Valid() {
		return nil, fmt.Errorf("invalid human player %d", uint8(s.human))
	}
	if _, err := game.NewGameStateFrom(s.startBoard, s.startPlayer); err != nil {
		return nil, fmt.Errorf("invalid start position: %w", err)
	}
	s.NewGame()
	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// NewGame abandons the current game and starts a new one under a new id.
func (s *Session) NewGame() StateView {
	gs, err := game.NewGameStateFrom(s.startBoard, s.startPlayer)
	if err != nil {
		panic(err) // Checked in NewSession
	}
	s.id = uuid.NewString()
	s.state = gs
	s.history = nil
	log.Debug().Msgf("session %s: new game with %s to move", s.id, gs.Player())
	return s.State()
}

// Reset starts a new game and also drops the searchers' learned move
// ordering.
func (s *Session) Reset() StateView {
	s.searchers = make(map[searcher.Difficulty]*searcher.AlphaBeta)
	return s.NewGame()
}

func (s *Session) State() StateView {
	return newStateView(s.id, s.state)
}

// LegalMoves returns the moves of the player to move, none once the game is
// over.
func (s *Session) LegalMoves() []game.Move {
	return s.state.LegalMoves()
}

// IsMoveValid reports whether player could play pos on the current board,
// regardless of whose turn it is.
func (s *Session) IsMoveValid(player game.Player, pos game.Position) (bool, error) {
	if !pos.Valid() {
		return false, fmt.Errorf("%v: %w", pos, game.ErrOutOfRange)
	}
	if !player.Valid() {
		return false, fmt.Errorf("invalid player %d", uint8(player))
	}
	return game.IsLegal(s.state.Board, player, pos), nil
}

// History returns the placements of the current game in order.
func (s *Session) History() []Update {
	return append([]Update(nil), s.history...)
}

func (s *Session) Result() (game.Result, bool) {
	return s.state.Result()
}

// Play places a disc for the player to move at pos.
func (s *Session) Play(pos game.Position) (StateView, error) {
	if s.state.IsOver() {
		return s.State(), game.ErrGameOver
	}
	if s.human != 0 && s.state.Player() != s.human {
		return s.State(), fmt.Errorf("play %s for %s: %w", pos, s.state.Player(), ErrWrongTurn)
	}
	if err := s.apply(pos); err != nil {
		return s.State(), err
	}
	return s.State(), nil
}

// PlayAI searches a move for the player to move at difficulty d and plays it.
func (s *Session) PlayAI(d searcher.Difficulty) (StateView, game.Move, error) {
	if s.state.IsOver() {
		return s.State(), game.Move{}, game.ErrGameOver
	}
	if s.human != 0 && s.state.Player() == s.human {
		return s.State(), game.Move{}, fmt.Errorf("search for %s: %w", s.human, ErrWrongTurn)
	}
	if err := d.Validate(); err != nil {
		return s.State(), game.Move{}, err
	}

	move, metric, err := s.searcherFor(d).BestMove(s.state.Board, s.state.Player())
	if err != nil {
		return s.State(), game.Move{}, err
	}
	log.Debug().Msgf("session %s: %s searched %s at depth %d (%d nodes, score %d)",
		s.id, d.Name, move.Pos, metric.Depth, metric.Nodes, metric.Score)

	if err := s.apply(move.Pos); err != nil {
		return s.State(), game.Move{}, fmt.Errorf("searcher returned %s: %w", move.Pos, err)
	}
	return s.State(), move, nil
}

func (s *Session) apply(pos game.Position) error {
	mover := s.state.Player()
	move, err := s.state.Apply(pos)
	if err != nil {
		return err
	}
	s.history = append(s.history, Update{Move: move, Hash: s.state.Hash()})
	log.Debug().Msgf("session %s: %s played %s flipping %d", s.id, mover, pos, len(move.Flips))

	if s.state.Passed {
		log.Debug().Msgf("session %s: %s has no legal move and passes", s.id, mover.Opponent())
	}
	if result, over := s.state.Result(); over {
		log.Info().Msgf("session %s: game over after %d moves, %s", s.id, s.state.MoveCount, result)
	}
	return nil
}

func (s *Session) searcherFor(d searcher.Difficulty) *searcher.AlphaBeta {
	if ab, ok := s.searchers[d]; ok {
		return ab
	}
	options := append([]searcher.Option{searcher.WithDifficulty(d), searcher.WithMetrics()}, s.searchOptions...)
	ab := searcher.NewAlphaBeta(options...)
	s.searchers[d] = ab
	return ab
}
