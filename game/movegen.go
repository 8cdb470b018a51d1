package game

import "fmt"

// All directions a capture can run in.
var directions = [8]struct{ dr, dc int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LegalMoves returns every legal move for p in row-major order. An empty
// result means p must pass.
func LegalMoves(b Board, p Player) []Move {
	var moves []Move
	for i := range b.cells {
		if b.cells[i] != Empty {
			continue
		}
		if move, ok := moveAt(&b, p, positionOf(i)); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// MoveAt returns the move p would make at pos, if it is legal.
func MoveAt(b Board, p Player, pos Position) (Move, bool) {
	if !pos.Valid() || b.cells[pos.Index()] != Empty {
		return Move{}, false
	}
	return moveAt(&b, p, pos)
}

func moveAt(b *Board, p Player, pos Position) (Move, bool) {
	var flips []Position
	for _, d := range directions {
		flips = appendCaptures(flips, b, p, pos, d.dr, d.dc)
	}
	if len(flips) == 0 {
		return Move{}, false
	}
	return Move{Player: p, Pos: pos, Flips: flips}, true
}

// appendCaptures walks from pos along (dr, dc) and appends the run of
// opposing discs if it is closed by one of p's discs.
func appendCaptures(dst []Position, b *Board, p Player, pos Position, dr, dc int) []Position {
	own, opp := Disc(p), Disc(p.Opponent())
	row, col := pos.Row+dr, pos.Col+dc
	run := 0
	for row >= 0 && row < Size && col >= 0 && col < Size {
		switch b.cells[row*Size+col] {
		case opp:
			run++
			row, col = row+dr, col+dc
			continue
		case own:
			for k := 1; k <= run; k++ {
				dst = append(dst, Position{Row: pos.Row + k*dr, Col: pos.Col + k*dc})
			}
		}
		return dst
	}
	return dst
}

// capturesAny is appendCaptures without allocating, for mobility checks.
func capturesAny(b *Board, p Player, pos Position) bool {
	own, opp := Disc(p), Disc(p.Opponent())
	for _, d := range directions {
		row, col := pos.Row+d.dr, pos.Col+d.dc
		run := 0
		for row >= 0 && row < Size && col >= 0 && col < Size {
			c := b.cells[row*Size+col]
			if c == opp {
				run++
				row, col = row+d.dr, col+d.dc
				continue
			}
			if c == own && run > 0 {
				return true
			}
			break
		}
	}
	return false
}

// HasLegalMove reports whether p has at least one legal move.
func HasLegalMove(b Board, p Player) bool {
	for i := range b.cells {
		if b.cells[i] == Empty && capturesAny(&b, p, positionOf(i)) {
			return true
		}
	}
	return false
}

// Mobility counts the legal moves of p.
func Mobility(b Board, p Player) int {
	n := 0
	for i := range b.cells {
		if b.cells[i] == Empty && capturesAny(&b, p, positionOf(i)) {
			n++
		}
	}
	return n
}

// IsLegal reports whether p may play at pos.
func IsLegal(b Board, p Player, pos Position) bool {
	return pos.Valid() && b.cells[pos.Index()] == Empty && capturesAny(&b, p, pos)
}

// ApplyMove plays p at pos and returns the resulting board. The input board
// is never modified.
func ApplyMove(b Board, p Player, pos Position) (Board, Move, error) {
	if !pos.Valid() {
		return b, Move{}, fmt.Errorf("%w: %v", ErrOutOfRange, pos)
	}
	if !p.Valid() {
		return b, Move{}, fmt.Errorf("%w: invalid player %d", ErrIllegalMove, uint8(p))
	}
	move, ok := MoveAt(b, p, pos)
	if !ok {
		return b, Move{}, fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, p, pos)
	}
	return Apply(b, move), move, nil
}

// Apply places the move's disc and flips its captures on a copy of b. The
// move must come from the move generator for this board.
func Apply(b Board, m Move) Board {
	b.Place(m.Pos, m.Player)
	for _, pos := range m.Flips {
		b.Place(pos, m.Player)
	}
	return b
}
