package web

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrMissingPair = errors.New("playerA and playerB are required")
	ErrBadImport   = errors.New("import body must be a JSON export")
)

func (s *Server) apiListPlayers(ctx *fiber.Ctx) error {
	players, err := s.svc.ListPlayers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(players)
}

func (s *Server) apiCreatePlayer(ctx *fiber.Ctx) error {
	var req playerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	player, err := s.svc.CreatePlayer(ctx.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(player)
}

func (s *Server) apiRenamePlayer(ctx *fiber.Ctx) error {
	id, err := parsePlayerID(ctx.Params("id"))
	if err != nil {
		return badRequest(err)
	}
	var req playerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	player, err := s.svc.RenamePlayer(ctx.UserContext(), id, req.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(player)
}

func (s *Server) apiDeletePlayer(ctx *fiber.Ctx) error {
	id, err := parsePlayerID(ctx.Params("id"))
	if err != nil {
		return badRequest(err)
	}
	deleteScores, _ := strconv.ParseBool(ctx.Query("deleteScores", "false"))
	err = s.svc.DeletePlayer(ctx.UserContext(), id, deleteScores)
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) apiScores(ctx *fiber.Ctx) error {
	scores, err := s.svc.ScoresOn(ctx.UserContext(), ctx.Query("date", s.svc.Today()))
	if err != nil {
		return err
	}
	return ctx.JSON(scores)
}

func (s *Server) apiSubmitScores(ctx *fiber.Ctx) error {
	var req submitScoresRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	sub, err := s.svc.SubmitTimes(ctx.UserContext(), req.PlayerID, req.Date, req.Times)
	if err != nil {
		return err
	}
	return ctx.JSON(sub)
}

func (s *Server) apiHistory(ctx *fiber.Ctx) error {
	from, to := parseRange(ctx, "dateFrom", "dateTo", s.svc.Today())
	days, err := s.svc.History(ctx.UserContext(), from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(days)
}

func (s *Server) apiStats(ctx *fiber.Ctx) error {
	report, err := s.svc.Stats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

func (s *Server) apiScoreboard(ctx *fiber.Ctx) error {
	a, b, ok, err := parsePair(ctx, "playerA", "playerB")
	if err != nil {
		return badRequest(err)
	}
	if !ok {
		return badRequest(ErrMissingPair)
	}
	board, err := s.svc.Scoreboard(ctx.UserContext(), a, b)
	if err != nil {
		return err
	}
	return ctx.JSON(board)
}

func (s *Server) apiRatings(ctx *fiber.Ctx) error {
	ratings, err := s.svc.Ratings(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(ratings)
}

func (s *Server) apiExport(ctx *fiber.Ctx) error {
	data, err := s.svc.Export(ctx.UserContext())
	if err != nil {
		return err
	}
	ctx.Attachment("puzzleboard-" + s.svc.Today() + ".json")
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}

func (s *Server) apiImport(ctx *fiber.Ctx) error {
	if !json.Valid(ctx.Body()) {
		return badRequest(ErrBadImport)
	}
	err := s.svc.Import(ctx.UserContext(), ctx.Body())
	if err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
