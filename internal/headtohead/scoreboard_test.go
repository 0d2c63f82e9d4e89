package headtohead

import (
	"encoding/json"
	"testing"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alex = domain.Side{ID: 1, Name: "Alex"}
	tim  = domain.Side{ID: 2, Name: "Tim"}
)

func row(p domain.Side, date string, game domain.GameKey, secs int) domain.ScoreRow {
	return domain.ScoreRow{PlayerID: p.ID, PlayerName: p.Name, Date: date, Game: game, TimeSecs: secs}
}

func TestCompute_SingleDay(t *testing.T) {
	rows := []domain.ScoreRow{
		row(alex, "2024-03-01", domain.Zip, 120),
		row(tim, "2024-03-01", domain.Zip, 120),
		row(alex, "2024-03-01", domain.MiniSudoku, 90),
		row(alex, "2024-03-01", domain.Queens, 50),
		row(tim, "2024-03-01", domain.Queens, 45),
	}
	board := Compute(rows, alex, tim)
	require.Len(t, board.Daily, 1)
	d := board.Daily[0]

	zip := d.Games.Get(domain.Zip)
	assert.Equal(t, Tie, zip.Winner)
	assert.Equal(t, Points{A: 1, B: 1}, zip.Points)

	sudoku := d.Games.Get(domain.MiniSudoku)
	assert.Equal(t, None, sudoku.Winner, "missing time is not a loss")
	assert.Equal(t, Points{}, sudoku.Points)
	require.NotNil(t, sudoku.ATime)
	assert.Equal(t, 90, *sudoku.ATime)
	assert.Nil(t, sudoku.BTime)

	queens := d.Games.Get(domain.Queens)
	assert.Equal(t, B, queens.Winner)
	assert.Equal(t, Points{B: 1}, queens.Points)

	assert.Equal(t, Points{A: 1, B: 2}, d.DayPoints)
	assert.Equal(t, d.DayPoints, d.RunningTotal)
	assert.Equal(t, Points{A: 1, B: 2}, board.Totals.Overall)
	assert.Equal(t, B, board.Leader())
}

func TestCompute_RunningTotal(t *testing.T) {
	rows := []domain.ScoreRow{
		row(alex, "2024-03-03", domain.Zip, 10),
		row(tim, "2024-03-03", domain.Zip, 20),
		row(alex, "2024-03-01", domain.Zip, 30),
		row(tim, "2024-03-01", domain.Zip, 20),
		row(alex, "2024-03-02", domain.Queens, 30),
		row(tim, "2024-03-02", domain.Queens, 30),
		row(alex, "2024-03-04", domain.Queens, 30),
	}
	board := Compute(rows, alex, tim)
	require.Len(t, board.Daily, 4)

	want := []struct {
		date    string
		day     Points
		running Points
	}{
		{"2024-03-01", Points{B: 1}, Points{B: 1}},
		{"2024-03-02", Points{A: 1, B: 1}, Points{A: 1, B: 2}},
		{"2024-03-03", Points{A: 1}, Points{A: 2, B: 2}},
		{"2024-03-04", Points{}, Points{A: 2, B: 2}},
	}
	for i, w := range want {
		assert.Equal(t, w.date, board.Daily[i].Date)
		assert.Equal(t, w.day, board.Daily[i].DayPoints, w.date)
		assert.Equal(t, w.running, board.Daily[i].RunningTotal, w.date)
		if i > 0 {
			prev := board.Daily[i-1].RunningTotal
			assert.GreaterOrEqual(t, board.Daily[i].RunningTotal.A, prev.A)
			assert.GreaterOrEqual(t, board.Daily[i].RunningTotal.B, prev.B)
		}
	}
	last := board.Daily[len(board.Daily)-1].RunningTotal
	assert.Equal(t, last, board.Totals.Overall)
	assert.Equal(t, Points{A: 1, B: 1}, board.Totals.Games.Get(domain.Zip))
	assert.Equal(t, Points{A: 1, B: 1}, board.Totals.Games.Get(domain.Queens))
	assert.Equal(t, Tie, board.Leader())
}

func TestCompute_IdentityNotOrder(t *testing.T) {
	rows := []domain.ScoreRow{
		row(tim, "2024-03-01", domain.Zip, 10),
		row(alex, "2024-03-01", domain.Zip, 20),
		{PlayerID: 9, PlayerName: "Sam", Date: "2024-03-01", Game: domain.Zip, TimeSecs: 1},
		{PlayerID: 9, PlayerName: "Sam", Date: "2024-03-05", Game: domain.Zip, TimeSecs: 1},
	}
	board := Compute(rows, alex, tim)
	require.Len(t, board.Daily, 1, "dates with only other players are ignored")
	assert.Equal(t, B, board.Daily[0].Games.Get(domain.Zip).Winner)
	assert.Equal(t, alex, board.PlayerA)

	swapped := Compute(rows, tim, alex)
	assert.Equal(t, A, swapped.Daily[0].Games.Get(domain.Zip).Winner)
}

func TestCompute_Empty(t *testing.T) {
	board := Compute(nil, alex, tim)
	assert.Empty(t, board.Daily)
	assert.Equal(t, Points{}, board.Totals.Overall)
}

func TestScoreboard_JSON(t *testing.T) {
	rows := []domain.ScoreRow{row(alex, "2024-03-01", domain.Zip, 10)}
	data, err := json.Marshal(Compute(rows, alex, tim))
	require.NoError(t, err)

	var decoded struct {
		Daily []struct {
			Games map[string]struct {
				Winner *string `json:"winner"`
				ATime  *int    `json:"aTime"`
			} `json:"games"`
		} `json:"daily"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Daily, 1)
	zip := decoded.Daily[0].Games["ZIP"]
	assert.Nil(t, zip.Winner)
	assert.Equal(t, 10, *zip.ATime)
}
