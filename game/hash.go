package game

import "golang.org/x/exp/rand"

type StateHash uint64

const zobristSeed = 0x9e3779b97f4a7c15

// Zobrist keys: one per (square, colour) plus one for White to move. A fixed
// seed keeps hashes stable across runs.
var zobrist = newZobrist(zobristSeed)

type zobristKeys struct {
	discs   [Size * Size][2]uint64
	toWhite uint64
}

func newZobrist(seed uint64) *zobristKeys {
	rng := rand.New(rand.NewSource(seed))
	z := &zobristKeys{}
	for i := range z.discs {
		for c := range z.discs[i] {
			z.discs[i][c] = nonZero(rng)
		}
	}
	z.toWhite = nonZero(rng)
	return z
}

func nonZero(rng *rand.Rand) uint64 {
	for {
		if v := rng.Uint64(); v != 0 {
			return v
		}
	}
}

func (z *zobristKeys) disc(index int, c Cell) uint64 {
	if c == WhiteDisc {
		return z.discs[index][1]
	}
	return z.discs[index][0]
}

// Hash returns the zobrist hash of the board with p to move.
func Hash(b Board, p Player) StateHash {
	var h uint64
	for i, c := range b.cells {
		if c != Empty {
			h ^= zobrist.disc(i, c)
		}
	}
	if p == White {
		h ^= zobrist.toWhite
	}
	return StateHash(h)
}

// updateHash applies a move to h incrementally. toMoveChanged is true when the
// side to move differs after the move.
func updateHash(h StateHash, m Move, toMoveChanged bool) StateHash {
	v := uint64(h)
	own := Disc(m.Player)
	opp := Disc(m.Player.Opponent())
	v ^= zobrist.disc(m.Pos.Index(), own)
	for _, pos := range m.Flips {
		v ^= zobrist.disc(pos.Index(), opp)
		v ^= zobrist.disc(pos.Index(), own)
	}
	if toMoveChanged {
		v ^= zobrist.toWhite
	}
	return StateHash(v)
}
