package web

import (
	"errors"
	"net/url"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/headtohead"
	"github.com/goserg/puzzleboard/internal/service"
	"github.com/goserg/puzzleboard/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) renderToday(ctx *fiber.Ctx, date string, formErr error) error {
	board, err := s.svc.Day(ctx.UserContext(), date)
	if err != nil {
		return err
	}
	players, err := s.svc.ListPlayers(ctx.UserContext())
	if err != nil {
		return err
	}
	if formErr != nil {
		ctx.Status(statusOf(formErr))
	}
	return ctx.Render("today", newData("Today", "today").
		WithErrors(formErr).
		With("Date", date).
		With("Prev", domain.AddDays(date, -1)).
		With("Next", domain.AddDays(date, 1)).
		With("Board", board).
		With("Players", players), "layouts/main")
}

func (s *Server) handleToday(ctx *fiber.Ctx) error {
	return s.renderToday(ctx, ctx.Query("date", s.svc.Today()), nil)
}

func (s *Server) handleTodayPost(ctx *fiber.Ctx) error {
	req, err := parseSubmitForm(ctx)
	if err != nil {
		date := ctx.FormValue("date", "")
		if !domain.ValidDate(date) {
			date = s.svc.Today()
		}
		return s.renderToday(ctx, date, badRequest(err))
	}
	_, err = s.svc.SubmitTimes(ctx.UserContext(), req.PlayerID, req.Date, req.Times)
	if err != nil {
		if statusOf(err) == fiber.StatusInternalServerError {
			return err
		}
		return s.renderToday(ctx, req.Date, err)
	}
	return ctx.Redirect(webpath.Today + "?date=" + url.QueryEscape(req.Date))
}

func (s *Server) handleHistory(ctx *fiber.Ctx) error {
	from, to := parseRange(ctx, "from", "to", s.svc.Today())
	days, err := s.svc.History(ctx.UserContext(), from, to)
	if err != nil {
		return err
	}
	return ctx.Render("history", newData("History", "history").
		With("From", from).
		With("To", to).
		With("Days", days), "layouts/main")
}

func (s *Server) handleStats(ctx *fiber.Ctx) error {
	report, err := s.svc.Stats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Render("stats", newData("Statistics", "stats").
		With("Report", report), "layouts/main")
}

func (s *Server) handleScoreboard(ctx *fiber.Ctx) error {
	players, err := s.svc.ListPlayers(ctx.UserContext())
	if err != nil {
		return err
	}
	d := newData("Scoreboard", "scoreboard").
		With("Players", players).
		With("A", 0).
		With("B", 0)

	a, b, ok, err := parsePair(ctx, "a", "b")
	if err != nil {
		return badRequest(err)
	}
	if ok {
		var board headtohead.Scoreboard
		board, err = s.svc.Scoreboard(ctx.UserContext(), a, b)
		switch {
		case errors.Is(err, service.ErrSamePlayer):
			ctx.Status(fiber.StatusBadRequest)
			d = d.WithErrors(err)
		case err != nil:
			return err
		default:
			d = d.With("Board", board).With("Leader", board.Leader())
		}
		d = d.With("A", a).With("B", b)
	}
	return ctx.Render("scoreboard", d, "layouts/main")
}

func (s *Server) renderPlayers(ctx *fiber.Ctx, formErr error) error {
	players, err := s.svc.ListPlayers(ctx.UserContext())
	if err != nil {
		return err
	}
	if formErr != nil {
		ctx.Status(statusOf(formErr))
	}
	return ctx.Render("players", newData("Players", "players").
		WithErrors(formErr).
		With("Players", players), "layouts/main")
}

func (s *Server) handlePlayers(ctx *fiber.Ctx) error {
	return s.renderPlayers(ctx, nil)
}

func (s *Server) handlePlayersPost(ctx *fiber.Ctx) error {
	form, err := parsePlayerForm(ctx)
	if err != nil {
		return s.renderPlayers(ctx, badRequest(err))
	}
	switch form.action {
	case actionCreate:
		_, err = s.svc.CreatePlayer(ctx.UserContext(), form.name)
	case actionRename:
		_, err = s.svc.RenamePlayer(ctx.UserContext(), form.id, form.name)
	case actionDelete:
		err = s.svc.DeletePlayer(ctx.UserContext(), form.id, form.deleteScores)
	}
	if err != nil {
		if statusOf(err) == fiber.StatusInternalServerError {
			return err
		}
		return s.renderPlayers(ctx, err)
	}
	return ctx.Redirect(webpath.Players)
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ratings, err := s.svc.Ratings(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.Render("ratings", newData("Ratings", "ratings").
		With("Ratings", ratings), "layouts/main")
}
