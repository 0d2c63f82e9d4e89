package domain

import "time"

// ScoreRow is one player's completion of one game on one date. Date is a
// YYYY-MM-DD string, so lexical order is chronological order.
type ScoreRow struct {
	PlayerID   int     `json:"playerId"`
	PlayerName string  `json:"playerName"`
	Date       string  `json:"date"`
	Game       GameKey `json:"game"`
	TimeSecs   int     `json:"timeSecs"`
}

// Score is a stored row.
type Score struct {
	ScoreRow
	UpdatedAt time.Time `json:"updatedAt"`
}

func Rows(scores []Score) []ScoreRow {
	rows := make([]ScoreRow, 0, len(scores))
	for i := range scores {
		rows = append(rows, scores[i].ScoreRow)
	}
	return rows
}
