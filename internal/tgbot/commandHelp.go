package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, chat Chat, args string) (string, error) {
	names := visible(c.commands, chat.Role)
	args = strings.TrimPrefix(strings.TrimSpace(args), "/")
	for _, name := range names {
		if args == name {
			return "/" + name + " " + c.commands[name].Help(), nil
		}
	}
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range names {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Send /help and a command name for details.")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "lists the commands"
}

func (c *HelpCommand) Permission() mapset.Set[Role] {
	return everyone
}
