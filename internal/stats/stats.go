// Package stats derives leaderboards and per-player statistics from score
// rows. Every function is a pure transformation of its input.
package stats

import (
	"sort"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/normalize"
)

type GameStats struct {
	DaysPlayed   int      `json:"daysPlayed"`
	Best         *int     `json:"best"`
	Worst        *int     `json:"worst"`
	Average      *float64 `json:"average"`
	Median       *float64 `json:"median"`
	Last7Avg     *float64 `json:"last7Avg"`
	TrendVsPrev7 *float64 `json:"trendVsPrev7"`
}

// OverallStats covers complete days only.
type OverallStats struct {
	CompleteDays int      `json:"completeDays"`
	Best         *int     `json:"best"`
	Worst        *int     `json:"worst"`
	Average      *float64 `json:"average"`
	Median       *float64 `json:"median"`
}

// Wins counts days on which the player had the fastest time. Ties credit
// every tied player in full.
type Wins struct {
	Games   domain.PerGame[int] `json:"games"`
	Overall int                 `json:"overall"`
}

type PlayerStats struct {
	PlayerID   int                       `json:"playerId"`
	PlayerName string                    `json:"playerName"`
	Games      domain.PerGame[GameStats] `json:"games"`
	Overall    OverallStats              `json:"overall"`
	Wins       Wins                      `json:"wins"`
}

type Report struct {
	Players []PlayerStats `json:"players"`
	// Daily is oldest first.
	Daily []DailyView `json:"daily"`
}

// Player returns the stats of id, if present.
func (r Report) Player(id int) (PlayerStats, bool) {
	for _, p := range r.Players {
		if p.PlayerID == id {
			return p, true
		}
	}
	return PlayerStats{}, false
}

// Compute builds the statistics report for rows given in any order.
func Compute(rows []domain.ScoreRow) Report {
	sorted := make([]domain.ScoreRow, len(rows))
	copy(sorted, rows)
	// chronological order is required for the trend windows
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	// players with only unknown-game rows still get a zeroed entry
	players := make(map[int]*PlayerStats)
	var ids []int
	valid := make([]domain.ScoreRow, 0, len(sorted))
	for _, row := range sorted {
		if row.Game.Valid() {
			valid = append(valid, row)
		}
		p, ok := players[row.PlayerID]
		if !ok {
			p = &PlayerStats{PlayerID: row.PlayerID}
			players[row.PlayerID] = p
			ids = append(ids, row.PlayerID)
		}
		p.PlayerName = row.PlayerName
	}

	times := make(map[int]domain.PerGame[[]int], len(ids))
	for _, row := range valid {
		i, _ := row.Game.Index()
		t := times[row.PlayerID]
		t[i] = append(t[i], row.TimeSecs)
		times[row.PlayerID] = t
	}
	for _, id := range ids {
		t := times[id]
		for i := range domain.Games {
			players[id].Games[i] = gameStats(t[i])
		}
	}

	daily := groupDaily(valid, ascending)
	overalls := make(map[int][]int, len(ids))
	for _, day := range daily {
		for _, e := range day.Players {
			if e.Overall != nil {
				overalls[e.PlayerID] = append(overalls[e.PlayerID], *e.Overall)
			}
		}
		countWins(day, players)
	}
	for _, id := range ids {
		values := overalls[id]
		players[id].Overall = OverallStats{
			CompleteDays: len(values),
			Best:         minimum(values),
			Worst:        maximum(values),
			Average:      mean(values),
			Median:       median(values),
		}
	}

	out := make([]PlayerStats, 0, len(ids))
	for _, id := range ids {
		out = append(out, *players[id])
	}
	normalize.SortByName(out, func(p PlayerStats) string { return p.PlayerName })
	return Report{Players: out, Daily: daily}
}

func gameStats(times []int) GameStats {
	last7, delta := trend(times)
	return GameStats{
		DaysPlayed:   len(times),
		Best:         minimum(times),
		Worst:        maximum(times),
		Average:      mean(times),
		Median:       median(times),
		Last7Avg:     last7,
		TrendVsPrev7: delta,
	}
}

func countWins(day DailyView, players map[int]*PlayerStats) {
	for i := range domain.Games {
		best := -1
		for _, e := range day.Players {
			if t := e.Games[i]; t != nil && (best < 0 || *t < best) {
				best = *t
			}
		}
		if best < 0 {
			continue
		}
		for _, e := range day.Players {
			if t := e.Games[i]; t != nil && *t == best {
				players[e.PlayerID].Wins.Games[i]++
			}
		}
	}

	best := -1
	for _, e := range day.Players {
		if e.Overall != nil && (best < 0 || *e.Overall < best) {
			best = *e.Overall
		}
	}
	if best < 0 {
		return
	}
	for _, e := range day.Players {
		if e.Overall != nil && *e.Overall == best {
			players[e.PlayerID].Wins.Overall++
		}
	}
}
