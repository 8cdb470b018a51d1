package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "ladder")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	configs := []AgentConfig{
		{ID: 1, Name: "easy", MaxDepth: 2, MaxTime: 250 * time.Millisecond, Weights: game.DefaultWeights},
		{ID: 2, Name: "random", Random: true, Seed: 9},
		{ID: 3, Name: "minimax-easy", Minimax: true, MaxDepth: 2, Weights: game.DefaultWeights},
	}
	require.NoError(t, w.WriteAgentConfigs(configs))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	games := []GameRecord{{
		ID:    1,
		Black: 1,
		White: 2,
		GameMetric: GameMetric{
			StartingPlayer: game.Black,
			Result:         game.Result{Winner: game.Black, Black: 40, White: 24},
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     60,
			Passes:         1,
		},
	}}
	require.NoError(t, w.WriteGameRecords(games))

	moves := []MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:         1,
			Player:       game.Black,
			Move:         game.Position{Row: 2, Col: 3},
			SearchMetric: SearchMetric{Depth: 2, Nodes: 17, Score: 5},
		},
	}}
	require.NoError(t, w.WriteMoveRecords(moves))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 4)
	require.Equal(t, []string{"1", "easy", "false", "false", "0", "2", "250ms", "0", "1", "5", "25", "3", "12"}, rows[1])
	require.Equal(t, "true", rows[2][2])
	require.Equal(t, "true", rows[3][3])

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "2", "Black", "Black", "40", "24", "60", "1",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "Black", "d3", "2", "17", "0", "0", "0s", "5", "false"}, rows[1])
}

func TestWriterDraw(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "draws")
	require.NoError(t, err)
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, GameMetric: GameMetric{
		StartingPlayer: game.White,
		Result:         game.Result{Draw: true, Black: 32, White: 32},
	}}}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Equal(t, "draw", rows[1][4])
}
