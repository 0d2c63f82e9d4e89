package tgbot

import (
	"context"

	"github.com/goserg/puzzleboard/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

type SubCommand struct {
	subs *subscriptions
}

func (c *SubCommand) Run(ctx context.Context, chat Chat, _ string) (string, error) {
	err := c.subs.Add(ctx, domain.Subscriber{
		ChatID:    chat.ID,
		FirstName: chat.FirstName,
		Username:  chat.Username,
	})
	if err != nil {
		return "", err
	}
	return "Subscribed. Send /unsub to stop the notifications.", nil
}

func (c *SubCommand) Help() string {
	return "sends a message after every saved day"
}

func (c *SubCommand) Permission() mapset.Set[Role] {
	return everyone
}
