package stats

import (
	"sort"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/normalize"
)

// DailyPlayerEntry is one player's times on one date.
type DailyPlayerEntry struct {
	Date       string               `json:"date"`
	PlayerID   int                  `json:"playerId"`
	PlayerName string               `json:"playerName"`
	Games      domain.PerGame[*int] `json:"games"`
	Overall    *int                 `json:"overall"`
}

// Complete reports whether the player finished every game that day.
func (e DailyPlayerEntry) Complete() bool {
	return e.Overall != nil
}

type DailyView struct {
	Date    string             `json:"date"`
	Players []DailyPlayerEntry `json:"players"`
}

type order int

const (
	ascending order = iota
	descending
)

// BuildDailyView groups rows by date, newest first.
func BuildDailyView(rows []domain.ScoreRow) []DailyView {
	return groupDaily(rows, descending)
}

func groupDaily(rows []domain.ScoreRow, o order) []DailyView {
	byDate := make(map[string]map[int]*DailyPlayerEntry)
	// first-seen order keeps the name sort stable
	seen := make(map[string][]int)
	for _, row := range rows {
		if !row.Game.Valid() {
			continue
		}
		bucket, ok := byDate[row.Date]
		if !ok {
			bucket = make(map[int]*DailyPlayerEntry)
			byDate[row.Date] = bucket
		}
		entry, ok := bucket[row.PlayerID]
		if !ok {
			entry = &DailyPlayerEntry{
				Date:       row.Date,
				PlayerID:   row.PlayerID,
				PlayerName: row.PlayerName,
			}
			bucket[row.PlayerID] = entry
			seen[row.Date] = append(seen[row.Date], row.PlayerID)
		}
		secs := row.TimeSecs
		entry.Games.Set(row.Game, &secs)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool {
		if o == descending {
			return dates[i] > dates[j]
		}
		return dates[i] < dates[j]
	})

	views := make([]DailyView, 0, len(dates))
	for _, date := range dates {
		players := make([]DailyPlayerEntry, 0, len(seen[date]))
		for _, id := range seen[date] {
			entry := *byDate[date][id]
			entry.Overall = overall(entry.Games)
			players = append(players, entry)
		}
		normalize.SortByName(players, func(e DailyPlayerEntry) string { return e.PlayerName })
		views = append(views, DailyView{Date: date, Players: players})
	}
	return views
}

// overall is the sum of all game times, or nil unless every game is present.
func overall(games domain.PerGame[*int]) *int {
	sum := 0
	for _, t := range games {
		if t == nil {
			return nil
		}
		sum += *t
	}
	return &sum
}
