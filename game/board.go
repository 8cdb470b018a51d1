package game

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Board is an 8x8 Othello board. It is a value type: assigning or passing a
// Board copies every square, so callers never share a mutable board.
type Board struct {
	cells [Size * Size]Cell
}

// EmptyBoard returns a board with no discs.
func EmptyBoard() Board {
	return Board{}
}

// NewBoard returns the standard starting layout.
func NewBoard() Board {
	var b Board
	b.Place(Position{3, 3}, White)
	b.Place(Position{4, 4}, White)
	b.Place(Position{3, 4}, Black)
	b.Place(Position{4, 3}, Black)
	return b
}

func (b Board) At(pos Position) Cell {
	mustBeValid(pos)
	return b.cells[pos.Index()]
}

// Place sets the square to a disc of the given player.
func (b *Board) Place(pos Position, p Player) {
	mustBeValid(pos)
	if !p.Valid() {
		panic(fmt.Sprintf("place: invalid player %d", uint8(p)))
	}
	b.cells[pos.Index()] = Disc(p)
}

func mustBeValid(pos Position) {
	if !pos.Valid() {
		panic(fmt.Sprintf("board: %v: %v", ErrOutOfRange, pos))
	}
}

func (b Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

func (b Board) EmptyCount() int {
	return Size*Size - b.OccupiedCount()
}

// Score returns the number of discs owned by p.
func (b Board) Score(p Player) int {
	want := Disc(p)
	n := 0
	for _, c := range b.cells {
		if c == want {
			n++
		}
	}
	return n
}

// Counts returns the black and white disc counts in a single pass.
func (b Board) Counts() (black, white int) {
	for _, c := range b.cells {
		switch c {
		case BlackDisc:
			black++
		case WhiteDisc:
			white++
		}
	}
	return black, white
}

const (
	blackRune = 'X'
	whiteRune = 'O'
	emptyRune = '.'
)

func (c Cell) symbol() byte {
	switch c {
	case BlackDisc:
		return blackRune
	case WhiteDisc:
		return whiteRune
	default:
		return emptyRune
	}
}

// MarshalText encodes the board as 8 rows of X/O/. separated by '/'.
func (b Board) MarshalText() ([]byte, error) {
	out := make([]byte, 0, Size*Size+Size-1)
	for row := 0; row < Size; row++ {
		if row > 0 {
			out = append(out, '/')
		}
		for col := 0; col < Size; col++ {
			out = append(out, b.cells[row*Size+col].symbol())
		}
	}
	return out, nil
}

func (b *Board) UnmarshalText(text []byte) error {
	rows := strings.Split(string(text), "/")
	if len(rows) != Size {
		return fmt.Errorf("board snapshot: expected %d rows, got %d", Size, len(rows))
	}
	var parsed Board
	for row, line := range rows {
		if len(line) != Size {
			return fmt.Errorf("board snapshot: row %d has %d squares", row+1, len(line))
		}
		for col := 0; col < Size; col++ {
			switch line[col] {
			case blackRune:
				parsed.cells[row*Size+col] = BlackDisc
			case whiteRune:
				parsed.cells[row*Size+col] = WhiteDisc
			case emptyRune:
			default:
				return fmt.Errorf("board snapshot: unexpected %q at row %d col %d", line[col], row+1, col+1)
			}
		}
	}
	*b = parsed
	return nil
}

func (b Board) MarshalJSON() ([]byte, error) {
	text, _ := b.MarshalText()
	return json.Marshal(string(text))
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("board snapshot: %w", err)
	}
	return b.UnmarshalText([]byte(text))
}

// ParseBoard builds a board from its text snapshot.
func ParseBoard(s string) (Board, error) {
	var b Board
	err := b.UnmarshalText([]byte(s))
	return b, err
}

const (
	rowSeparator = "  +---+---+---+---+---+---+---+---+\n"
	columnHeader = "    a   b   c   d   e   f   g   h\n"
)

// String draws the board as an ASCII grid, mostly for logs and test failures.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(columnHeader)
	for row := 0; row < Size; row++ {
		sb.WriteString(rowSeparator)
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < Size; col++ {
			c := b.cells[row*Size+col].symbol()
			if c == emptyRune {
				c = ' '
			}
			sb.WriteString("| ")
			sb.WriteByte(c)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rowSeparator)
	return sb.String()
}
