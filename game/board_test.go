package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, WhiteDisc, b.At(Position{3, 3}))
	require.Equal(t, WhiteDisc, b.At(Position{4, 4}))
	require.Equal(t, BlackDisc, b.At(Position{3, 4}))
	require.Equal(t, BlackDisc, b.At(Position{4, 3}))
	require.Equal(t, 4, b.OccupiedCount())
	require.Equal(t, 60, b.EmptyCount())
	require.Equal(t, 2, b.Score(Black))
	require.Equal(t, 2, b.Score(White))
}

func TestBoardIsAValue(t *testing.T) {
	b := NewBoard()
	c := b
	c.Place(Position{0, 0}, Black)

	require.Equal(t, Empty, b.At(Position{0, 0}), "Copies should not alias the original board")
	require.Equal(t, BlackDisc, c.At(Position{0, 0}))
}

func TestBoardRejectsOutOfRange(t *testing.T) {
	b := NewBoard()
	require.Panics(t, func() { b.At(Position{8, 0}) })
	require.Panics(t, func() { b.Place(Position{0, -1}, Black) })
}

func TestBoardSnapshot(t *testing.T) {
	t.Run("text form of the starting board", func(t *testing.T) {
		text, err := NewBoard().MarshalText()
		require.NoError(t, err)
		require.Equal(t, "......../......../......../...OX.../...XO.../......../......../........", string(text))
	})

	t.Run("round trip preserves legal moves", func(t *testing.T) {
		gs := NewGameState()
		for i := 0; i < 10 && !gs.IsOver(); i++ {
			gs = gs.Play(gs.LegalMoves()[0])
		}

		text, err := gs.Board.MarshalText()
		require.NoError(t, err)
		restored, err := ParseBoard(string(text))
		require.NoError(t, err)

		require.Equal(t, gs.Board, restored)
		for _, p := range []Player{Black, White} {
			require.Equal(t, LegalMoves(gs.Board, p), LegalMoves(restored, p))
		}
	})

	t.Run("json round trip", func(t *testing.T) {
		b := NewBoard()
		data, err := json.Marshal(b)
		require.NoError(t, err)

		var restored Board
		require.NoError(t, json.Unmarshal(data, &restored))
		require.Equal(t, b, restored)
	})

	t.Run("rejects malformed snapshots", func(t *testing.T) {
		_, err := ParseBoard("........")
		require.Error(t, err)
		_, err = ParseBoard(strings.Repeat("......../", 7) + ".......Z")
		require.Error(t, err)
		_, err = ParseBoard(strings.Repeat("......../", 7) + "....")
		require.Error(t, err)
	})
}

func TestBoardString(t *testing.T) {
	s := NewBoard().String()
	require.Contains(t, s, "4 |   |   |   | O | X |   |   |   |\n")
	require.Contains(t, s, "5 |   |   |   | X | O |   |   |   |\n")
}

func TestPositionNotation(t *testing.T) {
	require.Equal(t, "d3", Position{2, 3}.String())
	require.Equal(t, "a1", Position{0, 0}.String())
	require.Equal(t, "h8", Position{7, 7}.String())

	pos, err := ParsePosition("D3")
	require.NoError(t, err)
	require.Equal(t, Position{2, 3}, pos)

	for _, bad := range []string{"", "i1", "a9", "a0", "d33"} {
		_, err := ParsePosition(bad)
		require.ErrorIs(t, err, ErrOutOfRange, "input %q", bad)
	}
}
