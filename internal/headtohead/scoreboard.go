// Package headtohead scores two players against each other day by day.
package headtohead

import (
	"encoding/json"
	"sort"

	"github.com/goserg/puzzleboard/internal/domain"
)

type Winner string

const (
	None Winner = ""
	A    Winner = "A"
	B    Winner = "B"
	Tie  Winner = "TIE"
)

// MarshalJSON renders None as null.
func (w Winner) MarshalJSON() ([]byte, error) {
	if w == None {
		return []byte("null"), nil
	}
	return json.Marshal(string(w))
}

func (w *Winner) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*w = None
	if s != nil {
		*w = Winner(*s)
	}
	return nil
}

type Points struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (p Points) Add(o Points) Points {
	return Points{A: p.A + o.A, B: p.B + o.B}
}

type GameResult struct {
	ATime  *int   `json:"aTime"`
	BTime  *int   `json:"bTime"`
	Winner Winner `json:"winner"`
	Points Points `json:"points"`
}

type Day struct {
	Date         string                     `json:"date"`
	Games        domain.PerGame[GameResult] `json:"games"`
	DayPoints    Points                     `json:"dayPoints"`
	RunningTotal Points                     `json:"runningTotal"`
}

type Totals struct {
	Games   domain.PerGame[Points] `json:"games"`
	Overall Points                 `json:"overall"`
}

type Scoreboard struct {
	PlayerA domain.Side `json:"playerA"`
	PlayerB domain.Side `json:"playerB"`
	Totals  Totals      `json:"totals"`
	Daily   []Day       `json:"daily"`
}

// Leader returns the side ahead on total points, or Tie.
func (s Scoreboard) Leader() Winner {
	switch {
	case s.Totals.Overall.A > s.Totals.Overall.B:
		return A
	case s.Totals.Overall.B > s.Totals.Overall.A:
		return B
	}
	return Tie
}

// Compute scores a against b. Rows of other players and unknown games are
// ignored; a and b must be distinct.
func Compute(rows []domain.ScoreRow, a, b domain.Side) Scoreboard {
	type bucket struct {
		a, b domain.PerGame[*int]
	}
	byDate := make(map[string]*bucket)
	for _, row := range rows {
		if !row.Game.Valid() || (row.PlayerID != a.ID && row.PlayerID != b.ID) {
			continue
		}
		bk, ok := byDate[row.Date]
		if !ok {
			bk = &bucket{}
			byDate[row.Date] = bk
		}
		secs := row.TimeSecs
		if row.PlayerID == a.ID {
			bk.a.Set(row.Game, &secs)
		}
		if row.PlayerID == b.ID {
			bk.b.Set(row.Game, &secs)
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	board := Scoreboard{
		PlayerA: a,
		PlayerB: b,
		Daily:   make([]Day, 0, len(dates)),
	}
	for _, date := range dates {
		bk := byDate[date]
		d := Day{Date: date}
		for i := range domain.Games {
			res := compare(bk.a[i], bk.b[i])
			d.Games[i] = res
			d.DayPoints = d.DayPoints.Add(res.Points)
			board.Totals.Games[i] = board.Totals.Games[i].Add(res.Points)
		}
		board.Totals.Overall = board.Totals.Overall.Add(d.DayPoints)
		d.RunningTotal = board.Totals.Overall
		board.Daily = append(board.Daily, d)
	}
	return board
}

// compare awards one point to the faster side and one to each on a tie. A
// missing time is not a loss: nobody scores.
func compare(aTime, bTime *int) GameResult {
	res := GameResult{ATime: aTime, BTime: bTime}
	if aTime == nil || bTime == nil {
		return res
	}
	switch {
	case *aTime < *bTime:
		res.Winner, res.Points = A, Points{A: 1}
	case *bTime < *aTime:
		res.Winner, res.Points = B, Points{B: 1}
	default:
		res.Winner, res.Points = Tie, Points{A: 1, B: 1}
	}
	return res
}
