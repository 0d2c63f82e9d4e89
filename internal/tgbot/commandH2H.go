package tgbot

import (
	"context"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type H2HCommand struct {
	board Board
}

func (c *H2HCommand) Run(ctx context.Context, _ Chat, args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", fmt.Errorf("/h2h %s: %w", c.Help(), ErrUsage)
	}
	a, err := c.board.PlayerByName(ctx, fields[0])
	if err != nil {
		return "", err
	}
	b, err := c.board.PlayerByName(ctx, fields[1])
	if err != nil {
		return "", err
	}
	board, err := c.board.Scoreboard(ctx, a.ID, b.ID)
	if err != nil {
		return "", err
	}
	return formatScoreboard(board), nil
}

func (c *H2HCommand) Help() string {
	return "<name> <name> compares two players game by game"
}

func (c *H2HCommand) Permission() mapset.Set[Role] {
	return everyone
}
