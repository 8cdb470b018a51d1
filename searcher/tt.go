package searcher

import "othello/game"

const DefaultTableSize = 1 << 16

type entry struct {
	hash  game.StateHash
	best  game.Position
	valid bool
}

// table remembers the best move found at each searched position. It only
// feeds move ordering: values are never read back, so it cannot change the
// result of a search, only its speed.
type table struct {
	entries []entry
}

func newTable(size int) *table {
	if size <= 0 {
		return nil
	}
	return &table{entries: make([]entry, size)}
}

func (t *table) slot(hash game.StateHash) *entry {
	return &t.entries[uint64(hash)%uint64(len(t.entries))]
}

func (t *table) lookup(hash game.StateHash) (game.Position, bool) {
	if t == nil {
		return game.Position{}, false
	}
	e := t.slot(hash)
	if !e.valid || e.hash != hash {
		return game.Position{}, false
	}
	return e.best, true
}

// store always replaces, newer searches are the better hint.
func (t *table) store(hash game.StateHash, best game.Position) {
	if t == nil {
		return
	}
	*t.slot(hash) = entry{hash: hash, best: best, valid: true}
}
