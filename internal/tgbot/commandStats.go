package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type StatsCommand struct {
	board Board
}

func (c *StatsCommand) Run(ctx context.Context, _ Chat, args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		report, err := c.board.Stats(ctx)
		if err != nil {
			return "", err
		}
		return formatReport(report), nil
	}
	player, err := c.board.PlayerByName(ctx, name)
	if err != nil {
		return "", err
	}
	ps, err := c.board.PlayerStats(ctx, player.ID)
	if err != nil {
		return "", err
	}
	return formatPlayerStats(ps), nil
}

func (c *StatsCommand) Help() string {
	return "[name] shows the win counts, or one player's statistics"
}

func (c *StatsCommand) Permission() mapset.Set[Role] {
	return everyone
}
