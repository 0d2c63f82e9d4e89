package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
)

type TopCommand struct {
	board Board
}

func (c *TopCommand) Run(ctx context.Context, _ Chat, _ string) (string, error) {
	ratings, err := c.board.Ratings(ctx)
	if err != nil {
		return "", err
	}
	return formatTop(ratings), nil
}

func (c *TopCommand) Help() string {
	return "shows the best of the Elo ladder"
}

func (c *TopCommand) Permission() mapset.Set[Role] {
	return everyone
}
