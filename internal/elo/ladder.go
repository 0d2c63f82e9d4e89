package elo

import (
	"math"
	"sort"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/normalize"
)

type Rating struct {
	PlayerID   int    `json:"playerId"`
	PlayerName string `json:"playerName"`
	Rating     int    `json:"rating"`
	Matches    int    `json:"matches"`
	Wins       int    `json:"wins"`
	Draws      int    `json:"draws"`
	Losses     int    `json:"losses"`
	Rank       int    `json:"rank"`
}

type round struct {
	date  string
	game  int
	times map[int]int
	order []int
}

// Ladder rates players by treating every (date, game) as a round in which
// each pair of players with a time plays one match: the faster time wins and
// equal times draw. Changes within a round are computed from the ratings at
// the start of the round, so the pairing order does not matter.
func Ladder(rows []domain.ScoreRow) []Rating {
	rounds := make(map[[2]string]*round)
	players := make(map[int]*Rating)
	var ids []int
	for _, row := range rows {
		gi, ok := row.Game.Index()
		if !ok {
			continue
		}
		p, ok := players[row.PlayerID]
		if !ok {
			p = &Rating{PlayerID: row.PlayerID, Rating: Initial}
			players[row.PlayerID] = p
			ids = append(ids, row.PlayerID)
		}
		p.PlayerName = row.PlayerName

		key := [2]string{row.Date, string(row.Game)}
		r, ok := rounds[key]
		if !ok {
			r = &round{date: row.Date, game: gi, times: make(map[int]int)}
			rounds[key] = r
		}
		if _, dup := r.times[row.PlayerID]; !dup {
			r.order = append(r.order, row.PlayerID)
		}
		r.times[row.PlayerID] = row.TimeSecs
	}

	ordered := make([]*round, 0, len(rounds))
	for _, r := range rounds {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].date != ordered[j].date {
			return ordered[i].date < ordered[j].date
		}
		return ordered[i].game < ordered[j].game
	})

	for _, r := range ordered {
		play(r, players)
	}

	out := make([]Rating, 0, len(ids))
	for _, id := range ids {
		out = append(out, *players[id])
	}
	normalize.SortByName(out, func(r Rating) string { return r.PlayerName })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	for i := range out {
		if i > 0 && out[i].Rating == out[i-1].Rating {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

func play(r *round, players map[int]*Rating) {
	deltas := make(map[int]float64, len(r.order))
	played := make(map[int]int, len(r.order))
	for i := 0; i < len(r.order); i++ {
		for j := i + 1; j < len(r.order); j++ {
			a, b := players[r.order[i]], players[r.order[j]]
			sa, sb := result(r.times[a.PlayerID], r.times[b.PlayerID])
			deltas[a.PlayerID] += Delta(a.Rating, b.Rating, KFactor(a.Matches, a.Rating), sa)
			deltas[b.PlayerID] += Delta(b.Rating, a.Rating, KFactor(b.Matches, b.Rating), sb)
			tally(a, sa)
			tally(b, sb)
			played[a.PlayerID]++
			played[b.PlayerID]++
		}
	}
	for id, d := range deltas {
		p := players[id]
		p.Rating = int(math.Round(float64(p.Rating) + d))
		p.Matches += played[id]
	}
}

func result(a, b int) (Points, Points) {
	switch {
	case a < b:
		return Win, Lose
	case b < a:
		return Lose, Win
	}
	return Draw, Draw
}

func tally(p *Rating, s Points) {
	switch s {
	case Win:
		p.Wins++
	case Lose:
		p.Losses++
	default:
		p.Draws++
	}
}
