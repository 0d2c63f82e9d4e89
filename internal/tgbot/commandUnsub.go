package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
)

type UnsubCommand struct {
	subs *subscriptions
}

func (c *UnsubCommand) Run(ctx context.Context, chat Chat, _ string) (string, error) {
	if !c.subs.Contains(chat.ID) {
		return "Not subscribed.", nil
	}
	err := c.subs.Remove(ctx, chat.ID)
	if err != nil {
		return "", err
	}
	return "Unsubscribed.", nil
}

func (c *UnsubCommand) Help() string {
	return "stops the notifications"
}

func (c *UnsubCommand) Permission() mapset.Set[Role] {
	return everyone
}
