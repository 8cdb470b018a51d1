package game

import (
	"fmt"
	"strings"
)

// Position is a (row, column) pair on the board, both in [0, 8).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Index returns the row-major square index in [0, 64).
func (p Position) Index() int {
	return p.Row*Size + p.Col
}

func positionOf(index int) Position {
	return Position{Row: index / Size, Col: index % Size}
}

// String renders the position in algebraic notation: column letter then row number.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// ParsePosition reads algebraic notation such as "d3" or "D3".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	pos := Position{Row: int(s[1]) - '1', Col: int(s[0]) - 'a'}
	if !pos.Valid() {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return pos, nil
}

// Move is a legal placement for a player together with the discs it flips.
// Moves are produced by the move generator only.
type Move struct {
	Player Player     `json:"player"`
	Pos    Position   `json:"pos"`
	Flips  []Position `json:"flips"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%s(+%d)", m.Player, m.Pos, len(m.Flips))
}
