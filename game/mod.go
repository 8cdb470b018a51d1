package game

import (
	"errors"
	"fmt"
)

const Size = 8

// Player is one of the two sides. The zero value is not a valid player.
type Player uint8

const (
	Black Player = iota + 1
	White
)

func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) Valid() bool {
	return p == Black || p == White
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

func (p Player) MarshalText() ([]byte, error) {
	switch p {
	case Black:
		return []byte("black"), nil
	case White:
		return []byte("white"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid player %d", uint8(p))
	}
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black", "Black", "X":
		*p = Black
	case "white", "White", "O":
		*p = White
	default:
		return fmt.Errorf("unknown player %q", text)
	}
	return nil
}

// Cell is the content of a board square.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Disc returns the cell holding a disc of player p.
func Disc(p Player) Cell {
	if p == White {
		return WhiteDisc
	}
	return BlackDisc
}

// Owner reports which player owns the cell, if any.
func (c Cell) Owner() (Player, bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return 0, false
	}
}

var (
	// ErrIllegalMove is returned when the position does not capture anything for the mover.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoLegalMove is returned when the mover has no move at all.
	ErrNoLegalMove = errors.New("no legal move")
	// ErrOutOfRange is returned for positions outside the 8x8 board.
	ErrOutOfRange = errors.New("position out of range")
	// ErrGameOver is returned when a move is attempted after the game ended.
	ErrGameOver = fmt.Errorf("game is over: %w", ErrNoLegalMove)
)

// Evaluates a board to an integer score from p's perspective. Must be a pure
// function of its arguments.
type Evaluate func(b Board, p Player) int
