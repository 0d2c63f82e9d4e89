package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type TodayCommand struct {
	board Board
}

func (c *TodayCommand) Run(ctx context.Context, _ Chat, args string) (string, error) {
	date := strings.TrimSpace(args)
	if date == "" {
		date = c.board.Today()
	}
	view, err := c.board.Day(ctx, date)
	if err != nil {
		return "", err
	}
	return formatDay(view), nil
}

func (c *TodayCommand) Help() string {
	return "[YYYY-MM-DD] shows the times of a day, today by default"
}

func (c *TodayCommand) Permission() mapset.Set[Role] {
	return everyone
}
