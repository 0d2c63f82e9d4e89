package tgbot

import (
	"strconv"
	"strings"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/elo"
	"github.com/goserg/puzzleboard/internal/headtohead"
	"github.com/goserg/puzzleboard/internal/service"
	"github.com/goserg/puzzleboard/internal/stats"
	"github.com/goserg/puzzleboard/internal/timefmt"
)

const topSize = 10

func writeGames(b *strings.Builder, games domain.PerGame[*int], overall *int) {
	for i, game := range domain.Games {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(game.Label())
		b.WriteString(" ")
		b.WriteString(timefmt.Format(games[i]))
	}
	if overall != nil {
		b.WriteString(", total ")
		b.WriteString(timefmt.Format(overall))
	}
}

func formatDay(view stats.DailyView) string {
	if len(view.Players) == 0 {
		return "No times on " + view.Date + " yet."
	}
	var b strings.Builder
	b.WriteString(view.Date)
	for _, entry := range view.Players {
		b.WriteString("\n")
		b.WriteString(entry.PlayerName)
		b.WriteString(": ")
		writeGames(&b, entry.Games, entry.Overall)
	}
	return b.String()
}

func formatSubmission(sub service.Submission) string {
	var b strings.Builder
	b.WriteString(sub.Player.Name)
	b.WriteString(" ")
	b.WriteString(sub.Date)
	b.WriteString(": ")
	writeGames(&b, sub.Games, sub.Overall)
	return b.String()
}

func formatWins(b *strings.Builder, wins stats.Wins) {
	for i, game := range domain.Games {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(game.Label())
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(wins.Games[i]))
	}
	b.WriteString(", overall ")
	b.WriteString(strconv.Itoa(wins.Overall))
}

func formatReport(report stats.Report) string {
	if len(report.Players) == 0 {
		return "No scores yet."
	}
	var b strings.Builder
	b.WriteString("Wins")
	for _, p := range report.Players {
		b.WriteString("\n")
		b.WriteString(p.PlayerName)
		b.WriteString(": ")
		formatWins(&b, p.Wins)
	}
	return b.String()
}

func formatPlayerStats(ps stats.PlayerStats) string {
	var b strings.Builder
	b.WriteString(ps.PlayerName)
	for i, game := range domain.Games {
		g := ps.Games[i]
		b.WriteString("\n")
		b.WriteString(game.Label())
		b.WriteString(": days ")
		b.WriteString(strconv.Itoa(g.DaysPlayed))
		if g.DaysPlayed == 0 {
			continue
		}
		b.WriteString(", best ")
		b.WriteString(timefmt.Format(g.Best))
		b.WriteString(", average ")
		b.WriteString(timefmt.Format(g.Average))
		b.WriteString(", median ")
		b.WriteString(timefmt.Format(g.Median))
		b.WriteString(", last 7 ")
		b.WriteString(timefmt.Format(g.Last7Avg))
		b.WriteString(", trend ")
		b.WriteString(timefmt.Delta(g.TrendVsPrev7))
	}
	b.WriteString("\nOverall: complete days ")
	b.WriteString(strconv.Itoa(ps.Overall.CompleteDays))
	if ps.Overall.CompleteDays > 0 {
		b.WriteString(", best ")
		b.WriteString(timefmt.Format(ps.Overall.Best))
		b.WriteString(", average ")
		b.WriteString(timefmt.Format(ps.Overall.Average))
	}
	b.WriteString("\nWins: ")
	formatWins(&b, ps.Wins)
	return b.String()
}

func formatPoints(b *strings.Builder, p headtohead.Points) {
	b.WriteString(strconv.Itoa(p.A))
	b.WriteString(" : ")
	b.WriteString(strconv.Itoa(p.B))
}

func formatScoreboard(board headtohead.Scoreboard) string {
	var b strings.Builder
	b.WriteString(board.PlayerA.Name)
	b.WriteString(" ")
	formatPoints(&b, board.Totals.Overall)
	b.WriteString(" ")
	b.WriteString(board.PlayerB.Name)
	for i, game := range domain.Games {
		b.WriteString("\n")
		b.WriteString(game.Label())
		b.WriteString(" ")
		formatPoints(&b, board.Totals.Games[i])
	}
	b.WriteString("\nDays: ")
	b.WriteString(strconv.Itoa(len(board.Daily)))
	return b.String()
}

func formatTop(ratings []elo.Rating) string {
	if len(ratings) == 0 {
		return "No ratings yet."
	}
	var b strings.Builder
	for i := range ratings {
		if i >= topSize {
			break
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(ratings[i].Rank))
		b.WriteString(". ")
		b.WriteString(ratings[i].PlayerName)
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(ratings[i].Rating))
		b.WriteString(")")
	}
	return b.String()
}
