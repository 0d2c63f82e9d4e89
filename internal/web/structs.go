package web

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goserg/puzzleboard/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const historyDays = 7

var (
	ErrBadPlayerID = errors.New("player id must be a positive number")
	ErrBadAction   = errors.New("unknown action")
)

func parsePlayerID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadPlayerID)
	}
	return id, nil
}

func parseSubmitForm(ctx *fiber.Ctx) (submitScoresRequest, error) {
	req := submitScoresRequest{
		Date:  strings.TrimSpace(ctx.FormValue("date", "")),
		Times: make(map[domain.GameKey]string, len(domain.Games)),
	}
	var err error
	if player := ctx.FormValue("player", ""); player != "" {
		req.PlayerID, err = parsePlayerID(player)
	}
	for _, game := range domain.Games {
		req.Times[game] = ctx.FormValue(string(game), "")
	}
	err = errors.Join(err, req.Validate())
	if err != nil {
		return submitScoresRequest{}, err
	}
	return req, nil
}

type playerAction string

const (
	actionCreate playerAction = "create"
	actionRename playerAction = "rename"
	actionDelete playerAction = "delete"
)

type playerForm struct {
	action       playerAction
	id           int
	name         string
	deleteScores bool
}

func parsePlayerForm(ctx *fiber.Ctx) (playerForm, error) {
	form := playerForm{
		action:       playerAction(ctx.FormValue("action", string(actionCreate))),
		name:         strings.TrimSpace(ctx.FormValue("name", "")),
		deleteScores: ctx.FormValue("delete_scores", "") == "on",
	}
	var err error
	switch form.action {
	case actionCreate:
		err = playerRequest{Name: form.name}.Validate()
	case actionRename:
		form.id, err = parsePlayerID(ctx.FormValue("id", ""))
		err = errors.Join(err, playerRequest{Name: form.name}.Validate())
	case actionDelete:
		form.id, err = parsePlayerID(ctx.FormValue("id", ""))
	default:
		err = fmt.Errorf("%q: %w", form.action, ErrBadAction)
	}
	if err != nil {
		return playerForm{}, err
	}
	return form, nil
}

// parsePair reads two player ids from the query. ok is false when either
// is absent.
func parsePair(ctx *fiber.Ctx, aKey, bKey string) (a, b int, ok bool, err error) {
	rawA, rawB := ctx.Query(aKey), ctx.Query(bKey)
	if rawA == "" || rawB == "" {
		return 0, 0, false, nil
	}
	a, errA := parsePlayerID(rawA)
	b, errB := parsePlayerID(rawB)
	err = errors.Join(errA, errB)
	if err != nil {
		return 0, 0, false, err
	}
	return a, b, true, nil
}

// parseRange defaults to the week ending today.
func parseRange(ctx *fiber.Ctx, fromKey, toKey, today string) (from, to string) {
	to = ctx.Query(toKey, today)
	from = ctx.Query(fromKey, domain.AddDays(to, -(historyDays - 1)))
	return from, to
}
